package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPruneJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	job := NewPruneJob(service, 10)

	mockRepo.On("Prune", mock.Anything, 10).Return(int64(100), nil)

	err := job.Process(context.Background())
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPruneJob_ProcessError(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewPruneJob(NewService(mockRepo), 10)

	mockRepo.On("Prune", mock.Anything, 10).Return(int64(0), errors.New("locked"))

	assert.EqualError(t, job.Process(context.Background()), "locked")
}
