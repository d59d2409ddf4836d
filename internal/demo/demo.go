// Package demo walks a fresh clock through a scripted play session and
// prints each step in the translator's language.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-gameclock/internal/config"
	"github.com/tartampluch/go-gameclock/internal/gametime"
	"github.com/tartampluch/go-gameclock/internal/i18n"
)

// spendCount is how many action points step 5 spends.
const spendCount = 3

// Runner prints the demo to Out.
type Runner struct {
	Out io.Writer
	Tr  *i18n.Translator
}

// Run plays the scripted session on a clock with maxActionPoints and returns
// the final snapshot.
func (r *Runner) Run(maxActionPoints int) gametime.Status {
	clk := gametime.NewClockWithNarrator(maxActionPoints, r.Tr)

	r.line(config.TKeyDemoTitle, nil)
	r.blank()
	st := clk.Status()
	r.line(config.TKeyDemoStart, map[string]any{"Day": st.Day, "Hour": st.Hour})
	r.PrintStatus(st)

	r.step(1, r.Tr.Msg(config.TKeyStepWaitOne, nil))
	r.result(clk.Wait(1))
	r.PrintStatus(clk.Status())

	r.step(2, r.Tr.Msg(config.TKeyStepWaitMany, map[string]any{"Count": 5}))
	r.result(clk.Wait(5))
	r.PrintStatus(clk.Status())

	r.step(3, r.Tr.Msg(config.TKeyStepWaitUntil, map[string]any{"Hour": 20}))
	r.result(clk.WaitUntil(20))
	r.PrintStatus(clk.Status())

	r.step(4, r.Tr.Msg(config.TKeyStepMidnight, map[string]any{"Count": 10}))
	r.result(clk.Wait(10))
	r.PrintStatus(clk.Status())

	r.step(5, r.Tr.Msg(config.TKeyStepSpend, nil))
	r.line(config.TKeyDemoSpending, map[string]any{"Count": spendCount})
	for i := 0; i < spendCount; i++ {
		clk.SpendActionPoint()
	}
	r.PrintStatus(clk.Status())

	r.step(6, r.Tr.Msg(config.TKeyStepReset, map[string]any{"Count": config.HoursPerDay}))
	r.result(clk.Wait(config.HoursPerDay))
	r.line(config.TKeyDemoRestored, nil)
	r.PrintStatus(clk.Status())

	r.step(7, r.Tr.Msg(config.TKeyStepInvalid, nil))
	res := clk.Wait(0)
	r.result(res)
	r.line(config.TKeyDemoSuccess, map[string]any{"Success": res.Success})

	r.blank()
	r.blank()
	r.line(config.TKeyDemoComplete, nil)

	final := clk.Status()
	slog.Info(config.MsgDemoFinished,
		config.LogKeyComponent, config.CompDemo,
		config.LogKeyDay, final.Day,
		config.LogKeyHour, final.Hour,
		config.LogKeyAP, final.ActionPoints,
	)
	return final
}

// PrintStatus renders a status block.
func (r *Runner) PrintStatus(st gametime.Status) {
	r.blank()
	r.line(config.TKeyStatusHeader, nil)
	r.line(config.TKeyStatusDay, map[string]any{"Day": st.Day})
	r.line(config.TKeyStatusTime, map[string]any{"Hour": st.Hour, "Period": r.Tr.Period(st.TimeOfDay)})
	r.line(config.TKeyStatusAP, map[string]any{"Current": st.ActionPoints, "Max": st.MaxActionPoints})
	r.line(config.TKeyStatusFooter, nil)
}

func (r *Runner) step(n int, title string) {
	r.blank()
	r.blank()
	r.line(config.TKeyDemoStep, map[string]any{"Step": n, "Title": title})
}

func (r *Runner) result(res gametime.WaitResult) {
	r.line(config.TKeyDemoResult, map[string]any{"Message": res.Message})
}

func (r *Runner) line(key string, data map[string]any) {
	_, _ = fmt.Fprintln(r.Out, r.Tr.Msg(key, data))
}

func (r *Runner) blank() {
	_, _ = fmt.Fprintln(r.Out)
}
