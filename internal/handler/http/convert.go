package http

import (
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/calendar"
)

// Entity-to-DTO mapping shared by the handlers.

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := calendar.DateOf(*t)
	return &s
}

func toTurnResponse(t turn.Turn) turn.TurnResponse {
	return turn.TurnResponse{
		ID:        t.ID,
		Name:      t.Name,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Fixed:     t.Fixed,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

func toTurnResponses(turns []turn.Turn) []turn.TurnResponse {
	out := make([]turn.TurnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, toTurnResponse(t))
	}
	return out
}

func toScheduleResponse(sch schedule.Schedule) schedule.ScheduleResponse {
	days := sch.Days
	if days == nil {
		days = []int{}
	}
	return schedule.ScheduleResponse{
		ID:         sch.ID,
		EmployeeID: sch.EmployeeID,
		TurnID:     sch.TurnID,
		Days:       days,
		FreeDay:    sch.FreeDay,
		StartDate:  formatDatePtr(sch.StartDate),
		EndDate:    formatDatePtr(sch.EndDate),
		CreatedAt:  formatTime(sch.CreatedAt),
		UpdatedAt:  formatTime(sch.UpdatedAt),
	}
}

func toScheduleResponses(schedules []schedule.Schedule) []schedule.ScheduleResponse {
	out := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		out = append(out, toScheduleResponse(sch))
	}
	return out
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		PositionID: e.PositionID,
		Code:       e.Code,
		CreatedAt:  formatTime(e.CreatedAt),
		UpdatedAt:  formatTime(e.UpdatedAt),
	}
}

func toEmployeeResponses(employees []employee.Employee) []employee.EmployeeResponse {
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out
}

func toPositionResponse(p master.Position) master.PositionResponse {
	return master.PositionResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func toPositionResponses(positions []master.Position) []master.PositionResponse {
	out := make([]master.PositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, toPositionResponse(p))
	}
	return out
}

func toMarkResponse(m mark.Mark) mark.MarkResponse {
	return mark.MarkResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		TurnID:     m.TurnID,
		Label:      m.Label,
		Type:       m.Type,
		CreatedAt:  formatTime(m.CreatedAt),
		ClosedAt:   formatTimePtr(m.ClosedAt),
		Meta:       m.Meta,
	}
}

func toMarkResponses(marks []mark.Mark) []mark.MarkResponse {
	out := make([]mark.MarkResponse, 0, len(marks))
	for _, m := range marks {
		out = append(out, toMarkResponse(m))
	}
	return out
}

func toReportResponse(rep report.Report) report.ReportResponse {
	items := rep.Items
	if items == nil {
		items = []report.MarkItem{}
	}
	breaks := rep.Breaks
	if breaks == nil {
		breaks = []report.BreakSummary{}
	}
	return report.ReportResponse{
		ID:          rep.ID,
		Type:        rep.Type,
		EmployeeID:  rep.EmployeeID,
		Employee:    rep.Employee,
		TurnID:      rep.TurnID,
		Turn:        rep.Turn,
		Start:       formatTimePtr(rep.Start),
		End:         formatTimePtr(rep.End),
		DurationMin: rep.DurationMin,
		Items:       items,
		Breaks:      breaks,
		Notes:       rep.Notes,
		Timestamp:   formatTime(rep.Timestamp),
	}
}

func toReportResponses(reports []report.Report) []report.ReportResponse {
	out := make([]report.ReportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, toReportResponse(rep))
	}
	return out
}

// BoardRowResponse is the kiosk board row as served to terminals.
type BoardRowResponse struct {
	Employee  employee.EmployeeResponse `json:"employee"`
	Turn      *turn.TurnResponse        `json:"turn,omitempty"`
	Status    mark.Status               `json:"status"`
	OpenMarks []mark.MarkResponse       `json:"open_marks"`
}

// CloseResultResponse reports a committed close and whether its report
// consolidation lagged behind.
type CloseResultResponse struct {
	Mark        mark.MarkResponse `json:"mark"`
	ReportStale bool              `json:"report_stale"`
}

func toBoardRowResponse(row mark.BoardRow) BoardRowResponse {
	resp := BoardRowResponse{
		Employee:  toEmployeeResponse(row.Employee),
		Status:    row.Status,
		OpenMarks: toMarkResponses(row.OpenMarks),
	}
	if row.Turn != nil {
		t := toTurnResponse(*row.Turn)
		resp.Turn = &t
	}
	return resp
}

func toBoardRowResponses(rows []mark.BoardRow) []BoardRowResponse {
	out := make([]BoardRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBoardRowResponse(row))
	}
	return out
}

func toCloseResultResponse(res mark.CloseResult) CloseResultResponse {
	return CloseResultResponse{
		Mark:        toMarkResponse(res.Mark),
		ReportStale: res.ReportStale,
	}
}
