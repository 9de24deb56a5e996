package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/jobs"
	"github.com/fieldops/towtrack/services/jobs/mocks"
)

func performRequest(t *testing.T, h echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	assert.NoError(t, h(c))
	return rec
}

func TestGetJob_NotFoundMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockJobUC(ctrl)
	handler := NewJobHandler(mockUC)

	mockUC.EXPECT().GetJob(gomock.Any(), "T-9999").Return(nil, models.ErrJobNotFound)

	rec := performRequest(t, handler.GetJob, http.MethodGet, "/internal/jobs/T-9999", "",
		map[string]string{"protocol": "T-9999"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJob_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockJobUC(ctrl)
	handler := NewJobHandler(mockUC)

	mockUC.EXPECT().GetJob(gomock.Any(), "T-0042").
		Return(&models.Job{Protocol: "T-0042", Status: models.JobStatusTracking}, nil)

	rec := performRequest(t, handler.GetJob, http.MethodGet, "/internal/jobs/T-0042", "",
		map[string]string{"protocol": "T-0042"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "T-0042")
}

func TestAssignProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockJobUC(ctrl)
	handler := NewJobHandler(mockUC)

	mockUC.EXPECT().
		AssignProvider(gomock.Any(), "T-0001", jobs.ProviderAssignment{
			ProviderID:    "PRV-7",
			ProviderName:  "Carlos Lima",
			ProviderPhone: "+5511988880000",
		}).
		Return(nil)

	body := `{"provider_id":"PRV-7","provider_name":"Carlos Lima","provider_phone":"+5511988880000"}`
	rec := performRequest(t, handler.AssignProvider, http.MethodPost, "/internal/jobs/T-0001/assign", body,
		map[string]string{"protocol": "T-0001"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAcceptJob_InvalidTransitionMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockJobUC(ctrl)
	handler := NewJobHandler(mockUC)

	mockUC.EXPECT().AcceptJob(gomock.Any(), "T-0001").Return(models.ErrInvalidTransition)

	rec := performRequest(t, handler.AcceptJob, http.MethodPost, "/internal/jobs/T-0001/accept", "",
		map[string]string{"protocol": "T-0001"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFinalizeJob_MissingPhotoMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockJobUC(ctrl)
	handler := NewJobHandler(mockUC)

	mockUC.EXPECT().FinalizeJob(gomock.Any(), gomock.Any()).Return(models.ErrPhotoRequired)

	rec := performRequest(t, handler.FinalizeJob, http.MethodPost, "/internal/jobs/T-0042/finalize", `{}`,
		map[string]string{"protocol": "T-0042"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinalizeJob_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockJobUC(ctrl)
	handler := NewJobHandler(mockUC)

	mockUC.EXPECT().FinalizeJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.CompletionRecord) error {
			assert.Equal(t, "T-0042", record.Protocol)
			assert.Equal(t, "https://storage.local/completions/T-0042.jpg", record.PhotoURL)
			return nil
		})

	body := `{"photo_url":"https://storage.local/completions/T-0042.jpg"}`
	rec := performRequest(t, handler.FinalizeJob, http.MethodPost, "/internal/jobs/T-0042/finalize", body,
		map[string]string{"protocol": "T-0042"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
