package handler

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/tracking/mocks"
)

// jsMsg stubs the JetStream message; the handler only reads Data.
type jsMsg struct {
	jetstream.Msg
	data []byte
}

func (m jsMsg) Data() []byte { return m.data }

func TestHandlePositionReport_MalformedPayloadDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTrackingHandler(mocks.NewMockTrackingUC(ctrl), nil)

	err := h.handlePositionReportJS(jsMsg{data: []byte("not json")})
	assert.NoError(t, err)
}

func TestHandlePositionReport_InvalidReportDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC, nil)

	mockUC.EXPECT().RecordReport(gomock.Any(), gomock.Any()).
		Return(models.ErrInvalidReport)

	// An out-of-range report can never succeed on redelivery, so it is
	// acked and dropped rather than returned for a NAK.
	payload := []byte(`{"protocol":"JOB-100","sample":{"lat":95,"lng":10}}`)
	err := h.handlePositionReportJS(jsMsg{data: payload})
	assert.NoError(t, err)
}

func TestHandlePositionReport_StoreFailureRedelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	h := NewTrackingHandler(mockUC, nil)

	mockUC.EXPECT().RecordReport(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	payload := []byte(`{"protocol":"JOB-100","sample":{"lat":1,"lng":2}}`)
	err := h.handlePositionReportJS(jsMsg{data: payload})
	assert.Error(t, err)
}
