package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdnorth/salesreport/internal/report"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Organization = "북문상권"
	cfg.TopNDefault = 5
	cfg.Input.Encoding = "utf-8"
	cfg.Input.Columns.Amount = "금액"
	cfg.Report.FontPath = "/fonts/NanumGothic.ttf"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "경대북문지기", cfg.Organization)
	assert.Equal(t, "원", cfg.CurrencySuffix)
	assert.Equal(t, 10, cfg.TopNDefault)
	assert.Equal(t, "euc-kr", cfg.Input.Encoding)
	assert.Equal(t, "가맹점명", cfg.Input.Columns.Merchant)
	assert.Equal(t, "연월", cfg.Input.Columns.YearMonth)
	assert.Equal(t, "매출액", cfg.Input.Columns.Amount)
	assert.Empty(t, cfg.Report.FontPath)
	assert.InDelta(t, 12, cfg.Report.FontSize, 0.001)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	bad := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(bad, []byte("top_n_default: [oops"), 0o644))
	_, err = LoadOrDefault(bad)
	assert.Error(t, err)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("top_n_default: 3\ninput:\n  encoding: auto\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopNDefault)
	assert.Equal(t, "auto", cfg.Input.Encoding)
	assert.Equal(t, "가맹점명", cfg.Input.Columns.Merchant)
	assert.Equal(t, "경대북문지기", cfg.Organization)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "organization: 경대북문지기")
	assert.Contains(t, contents, "top_n_default: 10")
	assert.Contains(t, contents, "encoding: euc-kr")
	assert.Contains(t, contents, "year_month: 연월")
	assert.Contains(t, contents, "level: info")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SALESREPORT_TOP_N_DEFAULT", "7")
	t.Setenv("SALESREPORT_INPUT_ENCODING", "utf-8")
	t.Setenv("SALESREPORT_INPUT_COLUMNS_MERCHANT", "store")
	t.Setenv("SALESREPORT_REPORT_FONT_PATH", "/tmp/font.ttf")
	t.Setenv("SALESREPORT_LOG_LEVEL", "debug")

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, 7, cfg.TopNDefault)
	assert.Equal(t, "utf-8", cfg.Input.Encoding)
	assert.Equal(t, "store", cfg.Input.Columns.Merchant)
	assert.Equal(t, "연월", cfg.Input.Columns.YearMonth, "unset variables keep the file value")
	assert.Equal(t, "/tmp/font.ttf", cfg.Report.FontPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "경대북문지기", cfg.Organization)
}

func TestDefault_UsesReportDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, report.DefaultOrganization, cfg.Organization)
	assert.Equal(t, report.DefaultCurrencySuffix, cfg.CurrencySuffix)
}

func TestApplyEnv_IgnoresUnprefixedVariables(t *testing.T) {
	t.Setenv("AMOUNT", "price")
	t.Setenv("MERCHANT", "store")
	t.Setenv("ENCODING", "utf-8")
	t.Setenv("LEVEL", "verbose")
	t.Setenv("FONT_PATH", "/tmp/other.ttf")
	t.Setenv("TOP_N_DEFAULT", "3")
	t.Setenv("ORGANIZATION", "elsewhere")

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("SALESREPORT_TOP_N_DEFAULT", "many")
	assert.Error(t, ApplyEnv(Default()))
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.TopNDefault = 0
	cfg.Input.Encoding = "latin1"
	cfg.Input.Columns.Amount = ""
	cfg.Input.Columns.YearMonth = cfg.Input.Columns.Merchant
	cfg.Report.FontSize = -1
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"top_n_default", "latin1", "input.columns.amount is empty", "both name", "font_size", "loud"} {
		assert.Contains(t, msg, want)
	}
}

func TestValidate_EncodingAliases(t *testing.T) {
	for _, enc := range []string{"", "CP949", "UTF8", "auto"} {
		cfg := Default()
		cfg.Input.Encoding = enc
		assert.NoError(t, cfg.Validate(), enc)
	}
}

func TestImportOptions(t *testing.T) {
	cfg := Default()
	cfg.Input.Columns.Merchant = " 상호 "
	opts := cfg.ImportOptions()
	assert.Equal(t, "euc-kr", opts.Encoding)
	assert.Equal(t, "상호", opts.Columns.Merchant)
	assert.Equal(t, "매출액", opts.Columns.Amount)
}
