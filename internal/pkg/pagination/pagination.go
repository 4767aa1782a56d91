package pagination

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

var ErrInvalid = errors.New("invalid pagination parameters")

// Parse reads skip/limit query parameters. Defaults are skip=0,
// limit=100; skip must be >= 0 and limit within [1, 1000].
func Parse(c *gin.Context) (skip, limit int, err error) {
	skip = 0
	limit = DefaultLimit

	if v := c.Query("skip"); v != "" {
		skip, err = strconv.Atoi(v)
		if err != nil || skip < 0 {
			return 0, 0, ErrInvalid
		}
	}
	if v := c.Query("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, ErrInvalid
		}
	}
	return skip, limit, nil
}
