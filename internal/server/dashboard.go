package server

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"net/http"
	"regexp"
	"strings"

	"github.com/coscms/tables"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/webx-top/com"

	"github.com/admpub/product-analyzer/pkg/analyze"
	"github.com/admpub/product-analyzer/pkg/config"
	"github.com/admpub/product-analyzer/pkg/product"
)

const dashboardTitle = `Product dashboard`

func handleDashboard(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	em, err := cfg.Storager()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf(`Không tìm thấy file dữ liệu: %w`, err)
		} else {
			err = fmt.Errorf(`Lỗi khi tải dashboard: %w`, err)
		}
		renderPageError(w, r, cfg, dashboardTitle, err)
		return
	}
	report, err := analyze.Analyze(em)
	if err != nil {
		renderPageError(w, r, cfg, dashboardTitle, fmt.Errorf(`Lỗi khi tải dashboard: %w`, err))
		return
	}

	chartQuantity, err := quantityBar(cfg.Theme, report.Products)
	if err != nil {
		renderPageError(w, r, cfg, dashboardTitle, err)
		return
	}

	page := components.NewPage()
	page.PageTitle = dashboardTitle
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		chartQuantity,
		revenuePie(cfg.Theme, report.RevenueByProduct),
		priceBar(cfg.Theme, report.Products),
		revenueBar(cfg.Theme, report.Products),
		priceLine(cfg.Theme, report.Products),
	)
	if hm := createdHeatMap(cfg.Theme, report.Products); hm != nil {
		page.AddCharts(hm)
	}

	buf := bytes.NewBuffer(nil)
	if err = page.Render(buf); err != nil {
		renderPageError(w, r, cfg, dashboardTitle, err)
		return
	}
	extra := tableStyle + `<div class="container"><div class="item" style="width:900px">` + statsTable(report.Stats) + productTable(report.RevenueByProduct) + `</div></div> </div></body></html>`
	w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)
	w.Write(bodyAndLastDiv.ReplaceAll(buf.Bytes(), []byte(escapeReplacement(extra))))
}

func statsTable(stats analyze.Stats) string {
	table := tables.New()
	table.SetCaptionContent(`Thống kê`)
	table.Head.AddRow(new(tables.Row).AddCell(
		tables.NewCell(`Tổng sản phẩm`), tables.NewCell(`Tổng số lượng`), tables.NewCell(`Tổng doanh thu`),
		tables.NewCell(`Giá trung bình`), tables.NewCell(`Số lượng trung bình`),
	))
	table.Body.AddRow(new(tables.Row).AddCell(
		tables.NewCell(stats.TotalProducts), tables.NewCell(stats.TotalQuantity), tables.NewCell(formatMoney(stats.TotalRevenue)),
		tables.NewCell(formatMoney(stats.AvgPrice)), tables.NewCell(fmt.Sprintf(`%.1f`, stats.AvgQuantity)),
	))
	return string(table.Render())
}

func productTable(products []product.Product) string {
	table := tables.New()
	table.SetCaptionContent(`Sản phẩm theo doanh thu`)
	table.Head.AddRow(new(tables.Row).AddCell(tables.NewCell(`ID`), tables.NewCell(`Tên`), tables.NewCell(`Giá`), tables.NewCell(`Số lượng`), tables.NewCell(`Doanh thu`)))
	for _, p := range products {
		table.Body.AddRow(new(tables.Row).AddCell(tables.NewCell(p.ID), tables.NewCell(html.EscapeString(p.Name)), tables.NewCell(formatMoney(p.Price)), tables.NewCell(p.Quantity), tables.NewCell(formatMoney(p.Revenue()))))
	}
	return string(table.Render())
}

func formatMoney(v float64) string {
	s := com.String(v)
	if strings.Contains(s, `.`) {
		return fmt.Sprintf(`%.2f`, v)
	}
	return s
}

// regexp replacement strings treat $ specially
func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, `$`, `$$`)
}

var bodyAndLastDiv = regexp.MustCompile(`</div>\s*</body>\s*</html>\s*$`)
var tableStyle = `<style>
table {border-collapse: collapse;background-color: #f2f2f2;width: 100%;margin: 0 auto 20px;box-shadow: 1px 1px 5px rgba(0,0,0,0.3);}
table caption{color: #516b91; font-weight: bold}
th, td {border: 1px solid #ccc;text-align: left;padding: 8px;}
th {background-color: #516b91;color: white;}
tr:nth-child(odd) {background-color: #f2f2f2;}
tr:nth-child(even) {background-color: #fff;}
@media screen and (max-width: 600px) {
table {display: block;overflow-x: auto;}
th, td {display: block;width: 100%;}
}
</style>`
