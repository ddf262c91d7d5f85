package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFrom_PassesThroughDomainErrors(t *testing.T) {
	orig := Conflict("already approved")
	wrapped := fmt.Errorf("transition: %w", orig)

	got := From(wrapped)
	assert.Equal(t, KindConflict, got.Kind)
	assert.Equal(t, "already approved", got.Message)
}

func TestFrom_TranslatesGormErrors(t *testing.T) {
	assert.Equal(t, KindNotFound, From(gorm.ErrRecordNotFound).Kind)
	assert.Equal(t, KindConflict, From(gorm.ErrDuplicatedKey).Kind)
	assert.Equal(t, KindValidation, From(gorm.ErrForeignKeyViolated).Kind)
}

func TestFrom_UnknownErrorBecomesInfrastructure(t *testing.T) {
	cause := errors.New("connection refused")
	got := From(cause)

	assert.Equal(t, KindInfrastructure, got.Kind)
	// the raw cause never leaks into the client-facing message
	assert.Equal(t, "Internal server error", got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:     fiber.StatusBadRequest,
		KindAuthentication: fiber.StatusUnauthorized,
		KindAuthorization:  fiber.StatusForbidden,
		KindNotFound:       fiber.StatusNotFound,
		KindConflict:       fiber.StatusConflict,
		KindInfrastructure: fiber.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), "kind %s", kind)
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFound("gone"))
	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindConflict))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
}
