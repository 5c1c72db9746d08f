package rabbitmq

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service"
	mock_service "github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/service/mocks"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

type ackRecorder struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *ackRecorder) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}
func (a *ackRecorder) Nack(tag uint64, multiple bool, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}
func (a *ackRecorder) Reject(tag uint64, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

type fakePhotoService struct {
	received *model.NewPhotos
	response *service.ServiceResponse
}

func (f *fakePhotoService) AddPhotos(ctx context.Context, newphotos *model.NewPhotos, traceid string) *service.ServiceResponse {
	f.received = newphotos
	return f.response
}

func newTestConsumer(t *testing.T, response *service.ServiceResponse) (*RabbitConsumer, *fakePhotoService) {
	ctrl := gomock.NewController(t)
	logproducer := mock_service.NewMockLogProducer(ctrl)
	logproducer.EXPECT().NewPhotoLikeLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	photoservice := &fakePhotoService{response: response}
	return &RabbitConsumer{logproducer: logproducer, photoservice: photoservice, ctx: context.Background()}, photoservice
}

func TestHandleMessage(t *testing.T) {
	tests := []struct {
		name             string
		routingKey       string
		body             string
		response         *service.ServiceResponse
		expectedAck      bool
		expectedRequeue  bool
		expectedReceived *model.NewPhotos
	}{
		{
			name:             "Photo uploaded",
			routingKey:       model.PhotoUploadedKey,
			body:             `{"file_names":["1.jpg"],"original_names":["cat.jpg"],"traceid":"t1"}`,
			response:         &service.ServiceResponse{Success: true},
			expectedAck:      true,
			expectedReceived: &model.NewPhotos{FileNames: []string{"1.jpg"}, OriginalNames: []string{"cat.jpg"}},
		},
		{
			name:        "Malformed body",
			routingKey:  model.PhotoUploadedKey,
			body:        `{"file_names":`,
			expectedAck: false,
		},
		{
			name:             "Validation error is dropped",
			routingKey:       model.PhotoUploadedKey,
			body:             `{"file_names":["1.jpg","2.jpg"],"original_names":["cat.jpg"]}`,
			response:         &service.ServiceResponse{Success: false, Errors: erro.ClientError(erro.MismatchedFileNames)},
			expectedAck:      false,
			expectedReceived: &model.NewPhotos{FileNames: []string{"1.jpg", "2.jpg"}, OriginalNames: []string{"cat.jpg"}},
		},
		{
			name:             "Server error is requeued",
			routingKey:       model.PhotoUploadedKey,
			body:             `{"file_names":["1.jpg"],"original_names":["cat.jpg"]}`,
			response:         &service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.PhotoLikeServiceUnavalaible)},
			expectedAck:      false,
			expectedRequeue:  true,
			expectedReceived: &model.NewPhotos{FileNames: []string{"1.jpg"}, OriginalNames: []string{"cat.jpg"}},
		},
		{
			name:        "Unknown routing key",
			routingKey:  "photo.deleted",
			body:        `{}`,
			expectedAck: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, photoservice := newTestConsumer(t, tt.response)
			ack := &ackRecorder{}
			rc.handleMessage(amqp.Delivery{Acknowledger: ack, RoutingKey: tt.routingKey, Body: []byte(tt.body)})
			require.Equal(t, tt.expectedAck, ack.acked)
			require.Equal(t, !tt.expectedAck, ack.nacked)
			require.Equal(t, tt.expectedRequeue, ack.requeued)
			require.Equal(t, tt.expectedReceived, photoservice.received)
		})
	}
}
