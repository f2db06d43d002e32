package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type pageParams struct {
	All   bool
	Limit int
	Page  int
}

// parsePage reads all/limit/page with the same defaults as every list endpoint.
func parsePage(c *gin.Context) pageParams {
	p := pageParams{Limit: defaultPageLimit, Page: 1}
	p.All = strings.EqualFold(c.Query("all"), "true") || c.Query("all") == "1"
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
		if p.Limit > maxPageLimit {
			p.Limit = maxPageLimit
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}
	return p
}

// paginate slices items and builds the meta block.
func paginate[T any](items []T, p pageParams) ([]T, gin.H) {
	total := len(items)
	if p.All {
		return items, gin.H{"total": total, "all": true}
	}
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	meta := gin.H{"total": total, "page": p.Page, "limit": p.Limit}
	// checked before multiplying so huge pages cannot overflow
	if p.Page-1 > total/p.Limit {
		return items[:0], meta
	}
	start := (p.Page - 1) * p.Limit
	end := total
	if total-start > p.Limit {
		end = start + p.Limit
	}
	return items[start:end], meta
}
