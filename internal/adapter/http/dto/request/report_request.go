package request

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidQueryParam = errors.New("invalid query parameter")

// ReportQuery holds the optional filters of the /reports routes.
type ReportQuery struct {
	Year  string `form:"year"`
	Month string `form:"month"`
	N     string `form:"n"`
}

func (q ReportQuery) ResolveYear() (int, error) {
	return optionalInt(q.Year)
}

func (q ReportQuery) ResolveMonth() (int, error) {
	return optionalInt(q.Month)
}

// ResolveN defaults to def when n is absent. Zero or negative means "all".
func (q ReportQuery) ResolveN(def int) (int, error) {
	if strings.TrimSpace(q.N) == "" {
		return def, nil
	}
	return optionalInt(q.N)
}

func optionalInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ErrInvalidQueryParam
	}
	return n, nil
}
