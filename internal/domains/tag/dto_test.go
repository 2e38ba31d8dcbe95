package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTagRequestValidation(t *testing.T) {
	assert.NoError(t, CreateTagRequest{Name: "原創", Index: 3}.Validate())
	assert.Error(t, CreateTagRequest{}.Validate())
	assert.Error(t, CreateTagRequest{Name: "x", Index: -1}.Validate())
}

func TestRenameTagRequestValidation(t *testing.T) {
	assert.NoError(t, RenameTagRequest{NewName: "東方Project"}.Validate())
	assert.Error(t, RenameTagRequest{}.Validate())
}

func TestTagErrorsToHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrTagNotFound))
	assert.Equal(t, 409, ToHTTPStatus(ErrTagAlreadyExists))
	assert.Equal(t, 409, ToHTTPStatus(ErrTagInUse))
	assert.Equal(t, 500, ToHTTPStatus(assert.AnError))
}
