package helper_util_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	helper_util "github.com/dev-mohitbeniwal/thingsconsole/util/helper"
)

func contextFor(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	offset, count, err := helper_util.GetPaginationParams(contextFor("/search"), 25)
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 25, count)

	offset, count, err = helper_util.GetPaginationParams(contextFor("/search?offset=50&count=10"), 25)
	require.NoError(t, err)
	assert.Equal(t, 50, offset)
	assert.Equal(t, 10, count)

	_, _, err = helper_util.GetPaginationParams(contextFor("/search?offset=x"), 25)
	assert.Error(t, err)
}

func TestGetListParam(t *testing.T) {
	values, present := helper_util.GetListParam(contextFor("/things"), "fields")
	assert.False(t, present)
	assert.Nil(t, values)

	values, present = helper_util.GetListParam(contextFor("/things?fields="), "fields")
	assert.True(t, present)
	assert.Equal(t, []string{}, values)

	values, present = helper_util.GetListParam(contextFor("/things?fields=thingId,attributes"), "fields")
	assert.True(t, present)
	assert.Equal(t, []string{"thingId", "attributes"}, values)
}

func TestParseTimeRange(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	from, to, err := helper_util.ParseTimeRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(0, 0).UTC(), from)
	assert.Equal(t, now, to)

	from, _, err = helper_util.ParseTimeRange("2024-03-01T10:00:00Z", "", now)
	require.NoError(t, err)
	assert.Equal(t, 10, from.Hour())

	_, _, err = helper_util.ParseTimeRange("yesterday", "", now)
	assert.Error(t, err)

	_, _, err = helper_util.ParseTimeRange("2024-03-02T00:00:00Z", "", now)
	assert.ErrorIs(t, err, things_errors.ErrInvalidTimeRange)
}
