package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hlpnl/internal/chart"
	"hlpnl/internal/pnl"

	"github.com/gin-gonic/gin"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// Router 暴露 PnL 查询接口。
type Router struct {
	calc pnl.Calculator
	now  func() time.Time
}

func NewRouter(calc pnl.Calculator) *Router {
	return &Router{calc: calc, now: time.Now}
}

// Register 将路由挂载到 /api/hyperliquid 分组下。
func (r *Router) Register(group *gin.RouterGroup) {
	if group == nil {
		return
	}
	group.GET("/:wallet/pnl", r.handlePnL)
	group.GET("/:wallet/pnl/chart", r.handlePnLChart)
}

type pnlQuery struct {
	wallet string
	start  string
	end    string
}

// validWallet checks shape only: "0x" prefix and 42 characters in total.
func validWallet(w string) bool {
	return strings.HasPrefix(w, "0x") && len(w) == 42
}

// bindPnLQuery writes the 400 response itself and reports whether to go on.
func bindPnLQuery(c *gin.Context) (pnlQuery, bool) {
	q := pnlQuery{
		wallet: c.Param("wallet"),
		start:  strings.TrimSpace(c.Query("start")),
		end:    strings.TrimSpace(c.Query("end")),
	}
	if !validWallet(q.wallet) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidWallet})
		return q, false
	}
	if q.start == "" || q.end == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgDatesRequired})
		return q, false
	}
	return q, true
}

func (r *Router) calculate(c *gin.Context, q pnlQuery) (pnl.Report, bool) {
	report, err := r.calc.Calculate(c.Request.Context(), q.wallet, q.start, q.end)
	if err != nil {
		switch {
		case errors.Is(err, pnl.ErrInvertedRange):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvertedRange})
			return report, false
		case errors.Is(err, pnl.ErrRangeTooLong):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgRangeTooLong})
			return report, false
		}
		_ = c.Error(err)
		return report, false
	}
	return report, true
}

func (r *Router) handlePnL(c *gin.Context) {
	q, ok := bindPnLQuery(c)
	if !ok {
		return
	}
	report, ok := r.calculate(c, q)
	if !ok {
		return
	}
	daily := report.Daily
	if daily == nil {
		daily = []pnl.DailyRecord{}
	}
	c.JSON(http.StatusOK, PnLResponse{
		Wallet:  q.wallet,
		Start:   q.start,
		End:     q.end,
		Daily:   daily,
		Summary: report.Summary,
		Diagnostics: Diagnostics{
			DataSource:  dataSource,
			LastAPICall: r.now().UTC().Format(isoMillis),
			Notes:       derivedNotes,
		},
	})
}

func (r *Router) handlePnLChart(c *gin.Context) {
	q, ok := bindPnLQuery(c)
	if !ok {
		return
	}
	report, ok := r.calculate(c, q)
	if !ok {
		return
	}
	var buf bytes.Buffer
	title := fmt.Sprintf("%s PnL %s..%s", q.wallet, q.start, q.end)
	if err := chart.RenderDaily(&buf, title, report); err != nil {
		_ = c.Error(fmt.Errorf("render chart: %w", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
