package updaterun_mgrs

import (
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	w "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/onsi/gomega"
)

func TestUpdateRunManager_Reconcile(t *testing.T) {
	type fields struct {
		updateRunService services.UpdateRunService
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr bool
	}{
		{
			name: "should return an error if CountByStatus fails",
			fields: fields{
				updateRunService: &services.UpdateRunServiceMock{
					CountByStatusFunc: func(status []constants.UpdateRunStatus) ([]services.UpdateRunStatusCount, error) {
						return nil, errors.GeneralError("failed to count update runs by status")
					},
				},
			},
			wantErr: true,
		},
		{
			name: "should successfully set update run status count metrics",
			fields: fields{
				updateRunService: &services.UpdateRunServiceMock{
					CountByStatusFunc: func(status []constants.UpdateRunStatus) ([]services.UpdateRunStatusCount, error) {
						return []services.UpdateRunStatusCount{{
							Status: constants.UpdateRunStatusPending,
							Count:  4,
						}}, nil
					},
				},
			},
			wantErr: false,
		},
	}

	for _, testcase := range tests {
		tt := testcase

		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(len(NewUpdateRunManager(tt.fields.updateRunService, w.Reconciler{}).Reconcile()) > 0).To(gomega.Equal(tt.wantErr))
		})
	}
}
