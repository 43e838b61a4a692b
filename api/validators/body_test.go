package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
)

type sampleBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Score int    `json:"score" validate:"min=0,max=100"`
}

func decode(t *testing.T, body string) (sampleBody, error) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var dest sampleBody
	err := DecodeJSONBody(req, &dest)
	return dest, err
}

func TestDecodeJSONBodyValid(t *testing.T) {
	dest, err := decode(t, `{"name":"FastFreight LLC","email":"dispatch@fastfreight.com","score":94}`)
	require.NoError(t, err)
	assert.Equal(t, "FastFreight LLC", dest.Name)
	assert.Equal(t, 94, dest.Score)
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	_, err := decode(t, `{"name":"x","email":"a@b.com","score":1,"extra":true}`)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyMalformed(t *testing.T) {
	_, err := decode(t, `{"name":`)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyFieldMessagesUseJSONNames(t *testing.T) {
	_, err := decode(t, `{"score":101}`)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "must be at most 100", details["score"])
}
