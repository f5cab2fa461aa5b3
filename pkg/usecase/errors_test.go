package usecase_test

import (
	"testing"

	"github.com/immersivevr/immersive/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestErrors_SentinelErrors(t *testing.T) {
	gt.Value(t, usecase.ErrModelNotFound).NotNil()
	gt.Value(t, usecase.ErrModelNotFound.Error()).Equal("model not found")
}
