package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/product-analyzer/pkg/chart"
	"github.com/admpub/product-analyzer/pkg/config"
)

const productsCSV = `name,price,quantity,created_at
A,100,10,2025-03-01
B,50,20,2025-03-01
C,1000,5,2025-03-03
`

func newTestConfig(t *testing.T, csv string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), `products.csv`)
	if len(csv) > 0 {
		require.NoError(t, os.WriteFile(path, []byte(csv), 0644))
	}
	cfg := &config.Config{Env: config.EnvTesting}
	require.NoError(t, cfg.SetDefaults())
	cfg.Storage = `memory://`
	cfg.CSVDataPath = path
	t.Cleanup(cfg.Close)
	return cfg
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(`User-Agent`, `Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexRedirect(t *testing.T) {
	h := NewRouter(newTestConfig(t, productsCSV))
	rec := do(t, h, http.MethodGet, `/`)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, `/dashboard`, rec.Header().Get(`Location`))
}

func TestAPIChart(t *testing.T) {
	h := NewRouter(newTestConfig(t, productsCSV))
	rec := do(t, h, http.MethodGet, `/api/chart`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"type":"bar","data":{"labels":["A","B","C"],"datasets":[{"label":"Số lượng sản phẩm","data":[10,20,5]}]}}`, rec.Body.String())
}

func TestAPIChartEmpty(t *testing.T) {
	h := NewRouter(newTestConfig(t, "name,price,quantity\n"))
	rec := do(t, h, http.MethodGet, `/api/chart`)
	require.Equal(t, http.StatusOK, rec.Code)
	var cfg chart.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Empty(t, cfg.Data.Labels)
	assert.Empty(t, cfg.Data.Datasets[0].Data)
}

func TestChartPage(t *testing.T) {
	h := NewRouter(newTestConfig(t, productsCSV))
	rec := do(t, h, http.MethodGet, `/chart`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<canvas id="chart"></canvas>`)
	assert.Contains(t, body, `window.chartData = {"labels":["A","B","C"],"values":[10,20,5]};`)
	assert.True(t, strings.HasSuffix(body, `</body></html>`))

	rec = do(t, h, http.MethodGet, `/chart?renderer=echarts`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="chart"`)

	rec = do(t, h, http.MethodGet, `/chart?renderer=svg`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboard(t *testing.T) {
	h := NewRouter(newTestConfig(t, productsCSV))
	rec := do(t, h, http.MethodGet, `/dashboard`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="chart"`)
	assert.Contains(t, body, `Thống kê`)
	assert.Contains(t, body, `Sản phẩm theo doanh thu`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), `</html>`))
}

func TestMissingData(t *testing.T) {
	h := NewRouter(newTestConfig(t, ``))
	rec := do(t, h, http.MethodGet, `/dashboard`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `Không tìm thấy file dữ liệu`)

	rec = do(t, h, http.MethodGet, `/api/stats`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, `Not Found`, resp[`status`])
}

func TestAPIStats(t *testing.T) {
	h := NewRouter(newTestConfig(t, productsCSV))
	rec := do(t, h, http.MethodGet, `/api/stats`)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, float64(3), stats[`total_products`])
	assert.Equal(t, float64(35), stats[`total_quantity`])
	assert.Equal(t, float64(7000), stats[`total_revenue`])
}

func TestAPIProducts(t *testing.T) {
	h := NewRouter(newTestConfig(t, productsCSV))

	rec := do(t, h, http.MethodGet, `/api/products`)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	rec = do(t, h, http.MethodGet, `/api/products?top=1&by=revenue`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, `C`, list[0][`name`])

	rec = do(t, h, http.MethodGet, `/api/products?top=1&by=name`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, `/api/products?top=zero`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, `/api/products?q=b`)
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.NotEmpty(t, matches)
	assert.Equal(t, `B`, matches[0][`product`].(map[string]any)[`name`])
}

func TestAPIReload(t *testing.T) {
	cfg := newTestConfig(t, productsCSV)
	h := NewRouter(cfg)
	rec := do(t, h, http.MethodGet, `/api/stats`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, os.WriteFile(cfg.CSVDataPath, []byte("name,price,quantity\nD,1,1\n"), 0644))
	rec = do(t, h, http.MethodPost, `/api/reload`)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, float64(1), stats[`total_products`])
}

func TestRoutersKeepOwnSettings(t *testing.T) {
	debugCfg := newTestConfig(t, productsCSV)
	debugCfg.Theme = `chalk`
	quietCfg := newTestConfig(t, productsCSV)
	quiet := false
	quietCfg.Debug = &quiet
	quietCfg.Theme = `essos`
	debugRouter := NewRouter(debugCfg)
	quietRouter := NewRouter(quietCfg)

	rec := do(t, debugRouter, http.MethodGet, `/chart?renderer=echarts`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `), "chalk"`)
	rec = do(t, quietRouter, http.MethodGet, `/chart?renderer=echarts`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `), "essos"`)
	assert.NotContains(t, rec.Body.String(), `), "chalk"`)

	debugCfg.Storage = `bogus://`
	quietCfg.Storage = `bogus://`
	debugCfg.Close()
	quietCfg.Close()
	var resp map[string]string
	rec = do(t, debugRouter, http.MethodGet, `/api/stats`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp[`error`], `unsupported storage`)

	resp = nil
	rec = do(t, quietRouter, http.MethodGet, `/api/stats`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp[`error`])
	assert.Equal(t, `Internal Server Error`, resp[`status`])
}
