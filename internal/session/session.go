// Package session holds the state of one interactive analysis: the loaded
// dataset, the chosen ranking size and the most recent result.
package session

import (
	"github.com/rs/zerolog"

	"github.com/kdnorth/salesreport/internal/analysis"
	"github.com/kdnorth/salesreport/internal/apperr"
	"github.com/kdnorth/salesreport/internal/config"
	"github.com/kdnorth/salesreport/internal/importer"
	"github.com/kdnorth/salesreport/internal/model"
	"github.com/kdnorth/salesreport/internal/report"
)

// Session is not safe for concurrent use.
type Session struct {
	cfg *config.Config
	log zerolog.Logger

	dataset *model.Dataset
	mode    model.Mode
	result  any
	n       int
}

// New starts an empty session. A nil cfg means config.Default().
func New(cfg *config.Config, log zerolog.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Session{cfg: cfg, log: log, n: cfg.TopNDefault}
}

// Dataset returns the loaded dataset, or nil.
func (s *Session) Dataset() *model.Dataset { return s.dataset }

// Mode returns the analysis last requested, even if it failed.
func (s *Session) Mode() model.Mode { return s.mode }

// Result returns the last successful result for Mode, or nil.
func (s *Session) Result() any { return s.result }

// N is the ranking size used when TopN is run without one.
func (s *Session) N() int { return s.n }

// Load reads a sales file. On failure the previous dataset stays loaded.
func (s *Session) Load(path string) (*model.Dataset, error) {
	ds, err := importer.LoadFile(path, s.cfg.ImportOptions())
	if err != nil {
		s.log.Debug().Err(err).Str("file", path).Msg("load failed")
		return nil, err
	}
	s.replace(ds)
	return ds, nil
}

// LoadTable validates an already parsed table.
func (s *Session) LoadTable(source string, table importer.RawTable) (*model.Dataset, error) {
	ds, err := importer.Load(source, table, s.cfg.ImportOptions().Columns)
	if err != nil {
		s.log.Debug().Err(err).Str("source", source).Msg("load failed")
		return nil, err
	}
	s.replace(ds)
	return ds, nil
}

func (s *Session) replace(ds *model.Dataset) {
	s.dataset = ds
	s.mode = model.ModeNone
	s.result = nil

	first, last := ds.Span()
	s.log.Info().
		Str("source", ds.Source()).
		Int("rows", ds.Len()).
		Int("merchants", len(ds.Merchants())).
		Stringer("from", first).
		Stringer("to", last).
		Msg("dataset loaded")
}

// TopN ranks merchants by total sales. n becomes the session's N even when
// it has to be reduced to the merchant count.
func (s *Session) TopN(n int) (model.RankingResult, error) {
	s.begin(model.ModeTopN)
	if s.dataset == nil {
		return model.RankingResult{}, apperr.New(apperr.KindNoData, "load a sales file first")
	}
	r, err := analysis.RankTopN(s.dataset, n)
	if err != nil {
		return model.RankingResult{}, err
	}
	s.n = n
	if r.Adjusted() {
		s.log.Info().Int("requested", r.Requested).Int("n", r.N).Msg("N reduced to merchant count")
	}
	s.result = r
	return r, nil
}

// TopNText parses user input for N and runs TopN.
func (s *Session) TopNText(text string) (model.RankingResult, error) {
	s.begin(model.ModeTopN)
	if s.dataset == nil {
		return model.RankingResult{}, apperr.New(apperr.KindNoData, "load a sales file first")
	}
	n, err := analysis.ParseN(text)
	if err != nil {
		return model.RankingResult{}, err
	}
	return s.TopN(n)
}

// Season compares vacation and non-vacation sales.
func (s *Session) Season() (model.SeasonResult, error) {
	s.begin(model.ModeSeason)
	if s.dataset == nil {
		return model.SeasonResult{}, apperr.New(apperr.KindNoData, "load a sales file first")
	}
	r, err := analysis.CompareSeasons(s.dataset)
	if err != nil {
		return model.SeasonResult{}, err
	}
	s.result = r
	return r, nil
}

// begin records the requested mode and drops the previous result.
func (s *Session) begin(mode model.Mode) {
	s.mode = mode
	s.result = nil
}

// Report formats the last result.
func (s *Session) Report() ([]string, error) {
	if s.dataset == nil || s.mode == model.ModeNone || s.result == nil {
		return nil, apperr.New(apperr.KindNoData, "nothing to export; run an analysis first")
	}
	return report.FormatReport(s.mode, s.result, s.ReportOptions())
}

// Title is the heading of exported reports.
func (s *Session) Title() string {
	return report.Title(s.cfg.Organization)
}

// ReportOptions derives formatter options from the config.
func (s *Session) ReportOptions() report.Options {
	return report.Options{CurrencySuffix: s.cfg.CurrencySuffix}
}

// Reset forgets the dataset and result and restores the default N.
func (s *Session) Reset() {
	s.dataset = nil
	s.mode = model.ModeNone
	s.result = nil
	s.n = s.cfg.TopNDefault
	s.log.Info().Int("n", s.n).Msg("session reset")
}
