package listing_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoofledger/hoofledger/internal/adapter"
	"github.com/hoofledger/hoofledger/internal/listing"
	"github.com/hoofledger/hoofledger/internal/mocks"
)

func TestRecordAPIClient_SaveRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	sink := listing.NewRecordAPIClient("http://localhost:8080/", httpClient, adapter.NewJSON())

	httpClient.EXPECT().
		Post(gomock.Any(), "http://localhost:8080/cattle-records", "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) ([]byte, error) {
			assert.JSONEq(t, `{
				"name": "Mimosa", "breed": "Nelore", "color": "White", "birth_date": "2022-03-14", "sire": "", "dam": "",
				"vaccines": "Aftosa", "feeding": "Pasture", "weight": "452.6", "photo_uri": "ipfs://bafyphoto"
			}`, string(body))
			return []byte(`{"id":"0e7c5b3a-1c7e-4f8a-9d5e-2f1b6c7d8e9f","name":"Mimosa"}`), nil
		})

	err := sink.SaveRecord(context.Background(), validForm(), &listing.Result{
		TokenID:  big.NewInt(7),
		PhotoURI: "ipfs://bafyphoto",
	})
	require.NoError(t, err)
}

func TestRecordAPIClient_SaveRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    []byte
		err     error
		wantErr string
	}{
		{
			name:    "request fails",
			err:     errors.New("unexpected status code 503"),
			wantErr: "failed to save cattle record: unexpected status code 503",
		},
		{
			name:    "garbled response",
			resp:    []byte(`<html>`),
			wantErr: "failed to decode cattle record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			httpClient := mocks.NewMockHTTPClient(ctrl)
			httpClient.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.resp, tt.err)

			sink := listing.NewRecordAPIClient("http://localhost:8080", httpClient, adapter.NewJSON())
			err := sink.SaveRecord(context.Background(), validForm(), &listing.Result{TokenID: big.NewInt(7)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
