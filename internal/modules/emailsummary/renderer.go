package emailsummary

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"saasquatch/internal/domain"
)

// TopLeads picks the highlight subset for the summary: leads with a defined
// fit score, by descending score (stable on ties), truncated to three.
func TopLeads(all []domain.Lead) []domain.Lead {
	scored := make([]domain.Lead, 0, len(all))
	for _, l := range all {
		if l.FitScore != nil {
			scored = append(scored, l)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].FitScore > *scored[j].FitScore
	})
	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}

type summaryData struct {
	Date             string
	TotalCount       int
	EnrichedCount    int
	TopCount         int
	WithContactCount int
	TopLeads         []leadRow
	Leads            []leadRow
	DashboardURL     string
}

type leadRow struct {
	Company    string
	Industry   string
	Website    string
	Employees  string
	Revenue    string
	OwnerName  string
	OwnerEmail string
	FitScore   string
	FitColor   string
	IsEnriched bool
	HasContact bool
}

func toRow(l domain.Lead) leadRow {
	row := leadRow{
		Company:    l.Company,
		Industry:   l.Industry,
		Website:    l.Website,
		IsEnriched: l.IsEnriched,
		HasContact: l.HasContact(),
		FitScore:   "-",
		FitColor:   "#6b7280",
	}
	if l.Employees != nil {
		row.Employees = fmt.Sprintf("%d employees", *l.Employees)
	}
	if l.Revenue != nil {
		row.Revenue = *l.Revenue
	}
	if l.OwnerName != nil {
		row.OwnerName = *l.OwnerName
	}
	if l.OwnerEmail != nil {
		row.OwnerEmail = *l.OwnerEmail
	}
	if l.FitScore != nil {
		row.FitScore = fmt.Sprintf("%.1f", *l.FitScore)
		switch {
		case *l.FitScore >= 8:
			row.FitColor = "#16a34a"
		case *l.FitScore >= 6:
			row.FitColor = "#f59e0b"
		}
	}
	return row
}

// Render produces the self-contained HTML summary document. It is a pure
// function of its inputs and the current date; no network, no persistence.
func Render(leadList, topLeads []domain.Lead, appURL string) (string, error) {
	data := summaryData{
		Date:         time.Now().Format("Monday, January 2, 2006"),
		TotalCount:   len(leadList),
		TopCount:     len(topLeads),
		DashboardURL: strings.TrimRight(appURL, "/") + "/dashboard",
	}
	for _, l := range leadList {
		if l.IsEnriched {
			data.EnrichedCount++
		}
		if l.HasContact() {
			data.WithContactCount++
		}
		data.Leads = append(data.Leads, toRow(l))
	}
	for _, l := range topLeads {
		data.TopLeads = append(data.TopLeads, toRow(l))
	}

	var sb strings.Builder
	if err := summaryTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return sb.String(), nil
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>SaaSquatch Lead Summary</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
        .container { max-width: 800px; margin: 0 auto; background: white; border-radius: 12px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); overflow: hidden; }
        .header { background: linear-gradient(135deg, #16a34a, #059669); color: white; padding: 30px 40px; text-align: center; }
        .header h1 { margin: 0; font-size: 28px; font-weight: 600; }
        .header p { margin: 10px 0 0 0; opacity: 0.9; font-size: 16px; }
        .content { padding: 40px; }
        .summary-stats { display: flex; justify-content: space-around; margin: 30px 0; }
        .stat-box { text-align: center; padding: 20px; background: #f8f9fa; border-radius: 8px; flex: 1; margin: 0 10px; }
        .stat-number { font-size: 32px; font-weight: 700; color: #16a34a; display: block; }
        .stat-label { color: #6b7280; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px; }
        .section-title { font-size: 24px; font-weight: 600; color: #1f2937; margin: 40px 0 20px 0; border-bottom: 3px solid #16a34a; padding-bottom: 10px; }
        .top-lead-card { border: 2px solid #16a34a; border-radius: 12px; padding: 25px; margin: 20px 0; background: linear-gradient(45deg, #f0fdf4, #ecfdf5); }
        .top-lead-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 15px; }
        .company-name { font-size: 20px; font-weight: 700; color: #1f2937; }
        .fit-score { background: #16a34a; color: white; padding: 8px 16px; border-radius: 20px; font-weight: 600; }
        .lead-details { display: grid; grid-template-columns: 1fr 1fr; gap: 15px; margin-top: 15px; }
        .detail-label { font-weight: 600; color: #6b7280; font-size: 13px; text-transform: uppercase; }
        .detail-value { color: #1f2937; font-size: 15px; }
        .leads-table { width: 100%; border-collapse: collapse; margin: 20px 0; border-radius: 8px; overflow: hidden; }
        .leads-table th { background: #f8f9fa; padding: 15px 12px; text-align: left; font-weight: 600; color: #374151; border-bottom: 2px solid #e5e7eb; }
        .leads-table td { padding: 12px; border-bottom: 1px solid #e5e7eb; }
        .enriched-badge { background: #16a34a; color: white; padding: 4px 8px; border-radius: 12px; font-size: 11px; font-weight: 600; }
        .tag { background: #dbeafe; color: #1e40af; padding: 3px 8px; border-radius: 12px; font-size: 11px; }
        .footer { background: #f8f9fa; padding: 30px 40px; text-align: center; color: #6b7280; border-top: 1px solid #e5e7eb; }
        .cta-button { display: inline-block; background: #16a34a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: 600; margin: 20px 0; }
        .contact-info { background: #f0fdf4; padding: 8px 12px; border-radius: 6px; font-size: 13px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Lead Discovery Summary</h1>
            <p>Generated on {{.Date}}</p>
        </div>

        <div class="content">
            <div class="summary-stats">
                <div class="stat-box">
                    <span class="stat-number">{{.TotalCount}}</span>
                    <div class="stat-label">Total Leads</div>
                </div>
                <div class="stat-box">
                    <span class="stat-number">{{.EnrichedCount}}</span>
                    <div class="stat-label">Enriched</div>
                </div>
                <div class="stat-box">
                    <span class="stat-number">{{.TopCount}}</span>
                    <div class="stat-label">High-Quality</div>
                </div>
                <div class="stat-box">
                    <span class="stat-number">{{.WithContactCount}}</span>
                    <div class="stat-label">With Contacts</div>
                </div>
            </div>

            <h2 class="section-title">Top Opportunity Leads</h2>
            {{range .TopLeads}}
            <div class="top-lead-card">
                <div class="top-lead-header">
                    <div class="company-name">{{.Company}}</div>
                    <div class="fit-score">{{.FitScore}}/10</div>
                </div>
                <div style="color: #6b7280; margin-bottom: 10px;">{{.Industry}}</div>
                <div class="lead-details">
                    <div>
                        <div class="detail-label">Website</div>
                        <div class="detail-value">{{if .Website}}{{.Website}}{{else}}Not available{{end}}</div>
                    </div>
                    <div>
                        <div class="detail-label">Company Size</div>
                        <div class="detail-value">{{if .Employees}}{{.Employees}}{{else}}Not disclosed{{end}}</div>
                    </div>
                    <div>
                        <div class="detail-label">Revenue</div>
                        <div class="detail-value">{{if .Revenue}}{{.Revenue}}{{else}}Not disclosed{{end}}</div>
                    </div>
                    <div>
                        <div class="detail-label">Contact</div>
                        <div class="detail-value">
                            {{if .HasContact}}
                            <div class="contact-info">
                                <strong>{{if .OwnerName}}{{.OwnerName}}{{else}}Contact Available{{end}}</strong><br>
                                {{.OwnerEmail}}
                            </div>
                            {{else}}Contact info not enriched{{end}}
                        </div>
                    </div>
                </div>
            </div>
            {{end}}

            <h2 class="section-title">Complete Leads Table</h2>
            <table class="leads-table">
                <thead>
                    <tr>
                        <th>Company</th>
                        <th>Industry</th>
                        <th>Size</th>
                        <th>Contact</th>
                        <th>Fit Score</th>
                        <th>Status</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Leads}}
                    <tr>
                        <td>
                            <strong>{{.Company}}</strong><br>
                            <small style="color: #6b7280;">{{.Website}}</small>
                        </td>
                        <td>{{.Industry}}</td>
                        <td>
                            {{if .Employees}}{{.Employees}}{{else}}-{{end}}<br>
                            <small style="color: #6b7280;">{{.Revenue}}</small>
                        </td>
                        <td>
                            {{if .HasContact}}
                            <div style="color: #16a34a;">&#10003; Available</div>
                            <small>{{.OwnerName}}</small>
                            {{else}}<span style="color: #9ca3af;">Not enriched</span>{{end}}
                        </td>
                        <td>
                            <strong style="color: {{.FitColor}}">{{.FitScore}}/10</strong>
                        </td>
                        <td>
                            {{if .IsEnriched}}<span class="enriched-badge">ENRICHED</span>{{else}}<span class="tag">PROSPECT</span>{{end}}
                        </td>
                    </tr>
                    {{end}}
                </tbody>
            </table>

            <div style="text-align: center; margin: 40px 0;">
                <a href="{{.DashboardURL}}" class="cta-button">Continue Lead Research</a>
            </div>
        </div>

        <div class="footer">
            <p><strong>SaaSquatch Alerts</strong> - Intelligent Lead Discovery Platform</p>
            <p>This summary was generated automatically from your lead research session.</p>
        </div>
    </div>
</body>
</html>
`))
