package pagination

import (
	"github.com/gin-gonic/gin"
)

// creates pagination metadata from params and total count
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}

// clamps limit into (0, maxLimit] and offset to >= 0
func DefaultParams(limit, offset, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return Params{
		Limit:  limit,
		Offset: max(offset, 0),
	}
}

// binds ?limit=&offset= and applies defaults
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) (Params, error) {
	var q Query

	if err := c.ShouldBindQuery(&q); err != nil {
		return Params{}, err
	}

	return DefaultParams(q.Limit, q.Offset, defaultLimit, maxLimit), nil
}
