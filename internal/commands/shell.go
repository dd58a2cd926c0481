package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/session"
)

const shellHelp = `Commands:
  load <file>     load a .csv or .xlsx sales file
  top [N]         rank merchants by total sales (N defaults to the last value)
  season          compare vacation and non-vacation months
  report          print the last result again
  pdf <file>      save the report (.pdf or .xlsx)
  chart <file>    save the chart (.pdf or .xlsx)
  reset           forget the data and result, N back to default
  help            show this help
  quit            leave the shell`

func newShellCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive analysis session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := &shell{s: a.session(), out: cmd.OutOrStdout()}
			return sh.run(cmd.InOrStdin())
		},
	}
}

type shell struct {
	s   *session.Session
	out io.Writer
}

func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(sh.out, sh.s.Title())
	fmt.Fprintln(sh.out, `Type "help" for commands.`)
	for {
		fmt.Fprintf(sh.out, "[N=%d]> ", sh.s.N())
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if name == "quit" || name == "exit" {
			return nil
		}
		if err := sh.exec(strings.ToLower(name), arg); err != nil {
			fmt.Fprintf(sh.out, "%s\n", describe(err))
		}
	}
}

func (sh *shell) exec(name, arg string) error {
	switch name {
	case "load":
		if arg == "" {
			return apperr.New(apperr.KindInput, "usage: load <file>")
		}
		ds, err := sh.s.Load(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "데이터 로드 완료: %d rows, %d merchants\n", ds.Len(), len(ds.Merchants()))
	case "top":
		if arg == "" {
			arg = fmt.Sprint(sh.s.N())
		}
		r, err := sh.s.TopNText(arg)
		if err != nil {
			return err
		}
		return printResult(sh.out, sh.s, r)
	case "season":
		r, err := sh.s.Season()
		if err != nil {
			return err
		}
		return printResult(sh.out, sh.s, r)
	case "report":
		return printResult(sh.out, sh.s, sh.s.Result())
	case "pdf", "save":
		return sh.save(arg, sh.s.SaveReport)
	case "chart":
		return sh.save(arg, sh.s.SaveChart)
	case "reset":
		sh.s.Reset()
		fmt.Fprintln(sh.out, "초기화 완료")
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	default:
		return apperr.Newf(apperr.KindInput, "unknown command %q (try help)", name)
	}
	return nil
}

func (sh *shell) save(path string, fn func(string) error) error {
	if path == "" {
		return apperr.New(apperr.KindInput, "a file name is required")
	}
	if err := fn(path); err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Saved %s\n", path)
	return nil
}

// describe prefixes errors with a short heading for their kind.
func describe(err error) string {
	heading := map[apperr.Kind]string{
		apperr.KindSchema:           "CSV 컬럼 구조 오류",
		apperr.KindDateParse:        "날짜 파싱 실패",
		apperr.KindAmountParse:      "매출액 파싱 실패",
		apperr.KindEncoding:         "인코딩 오류",
		apperr.KindNoData:           "경고",
		apperr.KindInput:            "입력 오류",
		apperr.KindInsufficientData: "데이터 부족",
		apperr.KindReport:           "보고서 생성 실패",
	}[apperr.KindOf(err)]
	if heading == "" {
		heading = "오류"
	}
	return fmt.Sprintf("%s: %v", heading, err)
}
