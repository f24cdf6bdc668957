package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fintrack-ph/backend/internal/finance"
	"github.com/fintrack-ph/backend/internal/httputil"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/reports"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	reportTimeframes   = []string{finance.Timeframe1Month, finance.Timeframe3Months, finance.Timeframe6Months, finance.Timeframe1Year}
	cashFlowTimeframes = []string{finance.CashFlowDaily, finance.CashFlowMonthly}
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetFinancialReport)
	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", GetDashboard)
	r.OPTIONS("/cash-flow", httputil.OptionsGet)
	r.GET("/cash-flow", GetCashFlow)
	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", ExportFinancialReport)
}

func generator(c *gin.Context) reports.Generator {
	return reports.NewGenerator(models.DB, userID(c), time.Now())
}

// timeframe reads the timeframe query parameter. An empty timeframe is
// returned as is, other values must be one of allowed.
func timeframe(c *gin.Context, allowed []string) (string, error) {
	var query QueryTimeframe
	err := c.ShouldBindQuery(&query)
	if err != nil {
		return "", err
	}

	if query.Timeframe != "" && !slices.Contains(allowed, query.Timeframe) {
		return "", fmt.Errorf("%w: %s", errTimeframe, query.Timeframe)
	}
	return query.Timeframe, nil
}

// @Summary		Dashboard
// @Description	Returns totals, 30 day trends, monthly and daily series, top expense categories and summaries of budgets, savings and invoices
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	reports.Dashboard
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/reports/dashboard [get]
func GetDashboard(c *gin.Context) {
	dashboard, err := generator(c).Dashboard()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// @Summary		Financial report
// @Description	Returns the financial report for the timeframe. Budgets are always included.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	reports.Financial
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			timeframe	query		string	false	"Timeframe of the report"	Enums(1month, 3months, 6months, 1year)	default(6months)
// @Router			/reports [get]
func GetFinancialReport(c *gin.Context) {
	tf, err := timeframe(c, reportTimeframes)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	report, err := generator(c).Financial(tf)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary		Cash flow
// @Description	Returns income, expenses and net for the last 7 days or the last 12 months
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	finance.CashFlow
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			timeframe	query		string	false	"Bucket size"	Enums(daily, monthly)	default(monthly)
// @Router			/reports/cash-flow [get]
func GetCashFlow(c *gin.Context) {
	tf, err := timeframe(c, cashFlowTimeframes)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	cashFlow, err := generator(c).CashFlow(tf)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cashFlow)
}

// @Summary		Export financial report
// @Description	Returns the financial report for the timeframe as XLSX workbook
// @Tags			Reports
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200			{file}		binary
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			timeframe	query		string	false	"Timeframe of the report"	Enums(1month, 3months, 6months, 1year)	default(6months)
// @Router			/reports/export [get]
func ExportFinancialReport(c *gin.Context) {
	tf, err := timeframe(c, reportTimeframes)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	report, err := generator(c).Financial(tf)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	workbook, err := reports.Workbook(report)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("rendering report workbook")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"fintrack-report-%s-%s.xlsx\"", report.Timeframe, time.Now().Format("20060102")))
	c.Header("Content-Type", reports.XLSXContentType)
	c.Status(http.StatusOK)

	err = workbook.Write(c.Writer)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("writing report workbook")
	}
}
