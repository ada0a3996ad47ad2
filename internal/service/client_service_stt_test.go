// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/propal-dashboard/internal/logger"
	"github.com/MKhiriev/propal-dashboard/internal/mock"
	"github.com/MKhiriev/propal-dashboard/internal/store"
	"github.com/MKhiriev/propal-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sttCatalog = models.STTCatalog{
	Providers: []models.STTProvider{
		{
			ID:          "google",
			DisplayName: "Google Cloud Speech",
			Models: []models.STTModel{
				{ID: "chirp", DisplayName: "Chirp", Languages: []models.STTLanguage{{ID: "hi-IN", DisplayName: "Hindi (India)"}}},
			},
		},
	},
}

func newTestClientSTTSvc(ctrl *gomock.Controller) (ClientSTTService, *mock.MockServerAdapter, *mock.MockLocalPreferencesRepository) {
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockPrefs := mock.NewMockLocalPreferencesRepository(ctrl)
	return NewClientSTTService(mockPrefs, mockAdapter, logger.Nop()), mockAdapter, mockPrefs
}

func TestClientSTTService_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestClientSTTSvc(ctrl)

	mockAdapter.EXPECT().STTCatalog(gomock.Any()).Return(sttCatalog, nil)

	got, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sttCatalog, got)
}

func TestClientSTTService_LoadPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockPrefs := newTestClientSTTSvc(ctrl)

	saved := models.STTSelection{Provider: "google", Model: "chirp", Language: "hi-IN"}
	mockPrefs.EXPECT().LoadPreferences(gomock.Any(), "u1").Return(saved, nil)
	mockPrefs.EXPECT().LoadPreferences(gomock.Any(), "u2").Return(models.STTSelection{}, store.ErrPreferencesNotFound)
	mockPrefs.EXPECT().LoadPreferences(gomock.Any(), "u3").Return(models.STTSelection{}, errors.New("db locked"))

	got, err := svc.LoadPreferences(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	got, err = svc.LoadPreferences(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, models.STTSelection{}, got)

	_, err = svc.LoadPreferences(context.Background(), "u3")
	assert.Error(t, err)
}

// TestClientSTTService_SavePreferences checks that only complete selections
// present in the catalog are stored.
func TestClientSTTService_SavePreferences(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		sel     models.STTSelection
		save    bool
		wantErr error
	}{
		{name: "complete and valid", userID: "u1", sel: models.STTSelection{Provider: "google", Model: "chirp", Language: "hi-IN"}, save: true},
		{name: "no language", userID: "u1", sel: models.STTSelection{Provider: "google", Model: "chirp"}, wantErr: ErrIncompleteSelection},
		{name: "unknown language", userID: "u1", sel: models.STTSelection{Provider: "google", Model: "chirp", Language: "fr"}, wantErr: ErrInvalidSTTSelection},
		{name: "no user", sel: models.STTSelection{Provider: "google", Model: "chirp", Language: "hi-IN"}, wantErr: ErrNotLoggedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockPrefs := newTestClientSTTSvc(ctrl)
			if tt.save {
				mockPrefs.EXPECT().SavePreferences(gomock.Any(), tt.userID, tt.sel).Return(nil)
			}

			err := svc.SavePreferences(context.Background(), tt.userID, sttCatalog, tt.sel)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
