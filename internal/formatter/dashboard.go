package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookstats/internal/analytics"
	"bookstats/pkg/metadata"
)

// DashboardVersion is written into the metadata block of every dashboard.
const DashboardVersion = "1"

// DashboardOptions controls dashboard rendering.
type DashboardOptions struct {
	Title string
	// ChartFile and DailyChartFile are linked from the revenue section when set.
	ChartFile      string
	DailyChartFile string
	GeneratedAt    time.Time
}

// RenderDashboard lays the report out in revenue, users, authors and data quality
// sections and signs the document. The signature marks the dashboard validated when
// no timestamp or price failed to parse.
func RenderDashboard(r analytics.Report, opts DashboardOptions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# 📊 %s\n\n", opts.Title)

	writeRevenue(&sb, r, opts)
	writeUsers(&sb, r)
	writeAuthors(&sb, r)
	writeQuality(&sb, r.Summary)

	return FormatMarkdown(sb.String(), metadata.Metadata{
		Version:    DashboardVersion,
		Validation: r.Summary.UnparseableTimestamps == 0 && r.Summary.UnparseablePrices == 0,
		LastModify: opts.GeneratedAt,
	})
}

func writeRevenue(sb *strings.Builder, r analytics.Report, opts DashboardOptions) {
	sb.WriteString("## 📅 Revenue\n\n")
	fmt.Fprintf(sb, "### Top %d Days by Revenue\n\n", len(r.TopDays))
	sb.WriteString(revenueTable(r.TopDays))

	if opts.ChartFile != "" {
		fmt.Fprintf(sb, "\n![Daily Revenue Over Time](%s)\n", opts.ChartFile)
	}

	sb.WriteString("\n### Daily Revenue\n\n")

	if opts.DailyChartFile != "" && len(r.DailyRevenue) > 0 {
		fmt.Fprintf(sb, "![Revenue per Day](%s)\n\n", opts.DailyChartFile)
	}

	sb.WriteString(revenueTable(r.DailyRevenue))
	sb.WriteString("\n")
}

func revenueTable(days []analytics.DayTotal) string {
	if len(days) == 0 {
		return "_No dated orders._\n"
	}

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{d.Date, d.Total.StringFixed(2)})
	}

	return rightAlignLast(Table([]string{"Date", "Revenue"}, rows))
}

func writeUsers(sb *strings.Builder, r analytics.Report) {
	sb.WriteString("## 👥 Users\n\n")
	fmt.Fprintf(sb, "**Unique Users:** %d\n\n", r.UniqueCustomers)
	sb.WriteString("### Top Customer(s)\n\n")

	top := r.TopCustomers
	if !top.Found() {
		sb.WriteString("_No orders matched a customer._\n\n")
		return
	}

	fmt.Fprintf(sb, "User IDs of best buyer(s): %s\n\n", strings.Join(top.IDs, ", "))

	rows := make([][]string, 0, len(top.Records))
	for _, c := range top.Records {
		rows = append(rows, []string{c.ID, c.Name, c.Address, c.Phone, c.Email})
	}

	sb.WriteString(Table([]string{"ID", "Name", "Address", "Phone", "Email"}, rows))
	fmt.Fprintf(sb, "\n**Top Customer Spending:** %s\n\n", top.Total.StringFixed(2))
}

func writeAuthors(sb *strings.Builder, r analytics.Report) {
	sb.WriteString("## 📚 Authors\n\n")
	fmt.Fprintf(sb, "**Unique Author Sets:** %d\n\n", r.UniqueAuthorSets)
	sb.WriteString("### Most Popular Author\n\n")

	if !r.PopularAuthor.Found {
		sb.WriteString("_No orders matched a book._\n\n")
		return
	}

	fmt.Fprintf(sb, "%s\n\nSold count: %d\n\n", r.PopularAuthor.Author, r.PopularAuthor.Quantity)
}

func writeQuality(sb *strings.Builder, s analytics.Summary) {
	sb.WriteString("## 🧹 Data Quality\n\n")

	rows := [][]string{
		{"Customers", strconv.Itoa(s.Customers)},
		{"Books", strconv.Itoa(s.Books)},
		{"Books without year", strconv.Itoa(s.BooksWithoutYear)},
		{"Orders", strconv.Itoa(s.Orders)},
		{"Missing timestamps", strconv.Itoa(s.MissingTimestamps)},
		{"Unparseable timestamps", strconv.Itoa(s.UnparseableTimestamps)},
		{"Missing prices", strconv.Itoa(s.MissingPrices)},
		{"Unparseable prices", strconv.Itoa(s.UnparseablePrices)},
		{"Missing quantities", strconv.Itoa(s.MissingQuantities)},
	}

	sb.WriteString(rightAlignLast(Table([]string{"Measure", "Rows"}, rows)))
}

// rightAlignLast marks the last column of a freshly built table as right aligned.
func rightAlignLast(table string) string {
	lines := strings.SplitN(table, "\n", 3)
	if len(lines) < 3 {
		return table
	}

	lines[1] = strings.TrimSuffix(lines[1], "--- |") + "---: |"

	return strings.Join(lines, "\n")
}
