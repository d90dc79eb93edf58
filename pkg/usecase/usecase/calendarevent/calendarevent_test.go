package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/entity/model"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/repository/mocks"
	usecase "github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/usecase/usecase/calendarevent"
)

func setupMockCalendarEvent(t *testing.T) (*mocks.MockCalendarEvent, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockCalendarEvent(ctrl)
	teardown := func() {
		ctrl.Finish()
	}
	return mockRepo, teardown
}

func TestCreateCalendarEvent(t *testing.T) {
	mockRepo, teardown := setupMockCalendarEvent(t)

	defer teardown()

	eventFrom := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	eventTo := eventFrom.Add(time.Hour)

	tests := []struct {
		name    string
		input   model.CreateCalendarEventInput
		arrange func()
		assert  func(t *testing.T, event *model.CalendarEvent, err error)
	}{
		{
			name: "Should create calendar event",
			input: model.CreateCalendarEventInput{
				Title:     "Team standup",
				EventFrom: eventFrom,
				EventTo:   eventTo,
			},
			arrange: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&model.CalendarEvent{
						ID:        1,
						Title:     "Team standup",
						EventFrom: eventFrom,
						EventTo:   eventTo,
					}, nil)
			},
			assert: func(t *testing.T, event *model.CalendarEvent, err error) {
				require.NoError(t, err)
				require.NotNil(t, event)
				require.Equal(t, eventFrom, event.EventFrom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange()

			uc := usecase.NewCalendarEventUseCase(mockRepo)

			event, err := uc.Create(context.Background(), tt.input)
			tt.assert(t, event, err)
		})
	}
}

func TestListCalendarEvents(t *testing.T) {
	mockRepo, teardown := setupMockCalendarEvent(t)

	defer teardown()

	mockRepo.EXPECT().List(gomock.Any()).Return([]model.CalendarEvent{}, nil)

	uc := usecase.NewCalendarEventUseCase(mockRepo)

	events, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, events)
}
