package httpx

import (
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// payrollView combines the record list with the monthly summary block.
type payrollView struct {
	List       listView[hrmsapi.PayrollRecord]
	Summary    hrmsapi.PayrollSummary
	HasSummary bool
	Month      string
}

// PayrollPage lists payroll records and the selected month's totals.
func (h *UIHandlers) PayrollPage(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	month := r.URL.Query().Get("month")

	page, err := h.API.ListPayroll(r.Context(), params)
	view := payrollView{List: toListView(page, params.Page), Month: month}

	if err == nil {
		summary, serr := h.API.MonthlyPayrollSummary(r.Context(), month)
		if serr != nil {
			h.logger().WarnContext(r.Context(), "payroll summary fetch failed", "error", serr)
		} else {
			view.Summary = summary
			view.HasSummary = true
		}
	}
	h.render(w, r, "payroll.tmpl", h.pageData("Payroll", view), err)
}

// MyPayslipsPage lists the caller's own payroll records.
func (h *UIHandlers) MyPayslipsPage(w http.ResponseWriter, r *http.Request) {
	records, err := h.API.MyPayslips(r.Context())
	h.render(w, r, "payslips.tmpl", h.pageData("My payslips", records), err)
}

// PayrollCreate creates a payroll record.
func (h *UIHandlers) PayrollCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.PayrollInput{
		EmployeeID: r.FormValue("employee_id"),
		Month:      r.FormValue("month"),
		BaseSalary: formFloat(r, "base_salary"),
		Allowances: formFloat(r, "allowances"),
		Deductions: formFloat(r, "deductions"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreatePayroll(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create payroll failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Create failed"))
		return
	}
	redirectBack(w, r)
}

// PayrollProcess moves a record from draft to processed.
func (h *UIHandlers) PayrollProcess(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.API.ProcessPayroll(r.Context(), id); err != nil {
		h.logger().WarnContext(r.Context(), "process payroll failed", "payroll_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Process failed"))
		return
	}
	redirectBack(w, r)
}

// PayrollPay marks a processed record as paid.
func (h *UIHandlers) PayrollPay(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.API.PayPayroll(r.Context(), id); err != nil {
		h.logger().WarnContext(r.Context(), "pay payroll failed", "payroll_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Pay failed"))
		return
	}
	redirectBack(w, r)
}
