package helper_util

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetPaginationParams reads the search window; count defaults to the
// inventory page size.
func GetPaginationParams(c *gin.Context, defaultCount int) (offset int, count int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, err
	}
	count, err = strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultCount)))
	if err != nil {
		return 0, 0, err
	}
	return offset, count, nil
}

// GetListParam splits a comma separated query parameter. present is false
// when the parameter is absent, and an explicit empty value yields an empty,
// non-nil list.
func GetListParam(c *gin.Context, name string) (values []string, present bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, false
	}
	if raw == "" {
		return []string{}, true
	}
	return strings.Split(raw, ","), true
}
