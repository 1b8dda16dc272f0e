package snapshot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gelato/internal/snapshot"
)

type record struct {
	ID   string  `json:"id"`
	Cost float64 `json:"cost"`
}

func TestWrite_EncodesCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := snapshot.NewMockStore(ctrl)
	store.EXPECT().
		Save(gomock.Any(), "things", []byte(`[{"id":"a","cost":1.5}]`)).
		Return(nil)

	err := snapshot.Write(context.Background(), store, "things", []record{{ID: "a", Cost: 1.5}})
	require.NoError(t, err)
}

func TestWrite_NilIsEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := snapshot.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), "things", []byte(`[]`)).Return(nil)

	err := snapshot.Write[record](context.Background(), store, "things", nil)
	require.NoError(t, err)
}

func TestWrite_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := snapshot.NewMockStore(ctrl)
	store.EXPECT().Save(gomock.Any(), "things", gomock.Any()).Return(errors.New("disk full"))

	err := snapshot.Write(context.Background(), store, "things", []record{})
	assert.ErrorContains(t, err, "disk full")
}

func TestRead(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *snapshot.MockStore)
		want      []record
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *snapshot.MockStore) {
				m.EXPECT().Load(gomock.Any(), "things").Return([]byte(`[{"id":"a","cost":2}]`), nil)
			},
			want: []record{{ID: "a", Cost: 2}},
		},
		{
			name: "NotFound",
			setupMock: func(m *snapshot.MockStore) {
				m.EXPECT().Load(gomock.Any(), "things").Return(nil, snapshot.ErrNotFound)
			},
			wantErr: snapshot.ErrNotFound,
		},
		{
			name: "Corrupt",
			setupMock: func(m *snapshot.MockStore) {
				m.EXPECT().Load(gomock.Any(), "things").Return([]byte(`{not json`), nil)
			},
			wantErr: snapshot.ErrCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := snapshot.NewMockStore(ctrl)
			tt.setupMock(store)

			got, err := snapshot.Read[record](context.Background(), store, "things")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
