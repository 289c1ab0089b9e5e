package handlers

import (
	"context"
	"errors"
	"net/http"

	request "buffet_festas/internal/adapter/http/dto/request"
	response "buffet_festas/internal/adapter/http/dto/response"
	"buffet_festas/internal/domain/entities"
	"buffet_festas/internal/domain/report"
	"buffet_festas/internal/domain/schedule"
	"buffet_festas/internal/usecase"
	"buffet_festas/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard reports.
type ReportHandler struct {
	usecase usecase.IReportUseCase
	clock   schedule.Clock
}

// NewReportHandler builds the handler. clock picks the default year of the
// peak-month report.
func NewReportHandler(uc usecase.IReportUseCase, clock schedule.Clock) *ReportHandler {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &ReportHandler{usecase: uc, clock: clock}
}

// FinancialSummary godoc
// @Summary      Freelancer payments by status
// @Tags         reports
// @Produce      json
// @Param        year   query     int  false  "Event year"
// @Param        month  query     int  false  "Event month (requires year)"
// @Success      200    {object}  response.FinancialSummaryResponse
// @Failure      400    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /reports/financial [get]
func (h *ReportHandler) FinancialSummary(c *gin.Context) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	year, err := q.ResolveYear()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	month, err := q.ResolveMonth()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	period := usecase.ReportPeriod{Year: year, Month: month}
	summary, err := h.usecase.FinancialSummary(c.Request.Context(), period)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialSummary(period, summary))
}

// TopClients godoc
// @Summary      Clients with most events
// @Tags         reports
// @Produce      json
// @Param        n    query    int  false  "How many (default 5, 0 for all)"
// @Success      200  {array}  response.RankEntryResponse
// @Security     Bearer
// @Router       /reports/top-clients [get]
func (h *ReportHandler) TopClients(c *gin.Context) {
	h.ranking(c, h.usecase.TopClients)
}

// TopFreelancers godoc
// @Summary      Freelancers with most events
// @Tags         reports
// @Produce      json
// @Param        n    query    int  false  "How many (default 5, 0 for all)"
// @Success      200  {array}  response.RankEntryResponse
// @Security     Bearer
// @Router       /reports/top-freelancers [get]
func (h *ReportHandler) TopFreelancers(c *gin.Context) {
	h.ranking(c, h.usecase.TopFreelancers)
}

// PeakMonth godoc
// @Summary      Month of peak demand
// @Tags         reports
// @Produce      json
// @Param        year  query     int  false  "Year (default current)"
// @Success      200   {object}  response.PeakMonthResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /reports/peak-month [get]
func (h *ReportHandler) PeakMonth(c *gin.Context) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	year, err := q.ResolveYear()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if year == 0 {
		year = h.clock.Now().Year()
	}

	peak, err := h.usecase.PeakDemandMonth(c.Request.Context(), year)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPeakMonth(year, peak))
}

func (h *ReportHandler) ranking(c *gin.Context, rank func(ctx context.Context, n int) ([]report.RankEntry, error)) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	n, err := q.ResolveN(report.DefaultTopN)
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	entries, err := rank(c.Request.Context(), n)
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRanking(entries))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportPeriod), errors.Is(err, entities.ErrInvalidArgument):
		return errInvalidRequest
	case errors.Is(err, entities.ErrNoData):
		return pkg.NewDomainErrorSimple("NO_DATA", "No events in the requested period", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
