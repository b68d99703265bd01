package hrmsapi

import (
	"context"
	"net/url"
)

// MyPayslips fetches the caller's own payroll records.
func (c *Client) MyPayslips(ctx context.Context) ([]PayrollRecord, error) {
	var out []PayrollRecord
	if err := c.Get(ctx, "/payroll/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPayroll fetches a page of payroll records across the company.
func (c *Client) ListPayroll(ctx context.Context, p ListParams) (Page[PayrollRecord], error) {
	var out Page[PayrollRecord]
	if err := c.Get(ctx, "/payroll", p.Values(), &out); err != nil {
		return Page[PayrollRecord]{}, err
	}
	return out, nil
}

// CreatePayroll creates a payroll record.
func (c *Client) CreatePayroll(ctx context.Context, in PayrollInput) (PayrollRecord, error) {
	var out PayrollRecord
	if err := c.Post(ctx, "/payroll", in, &out); err != nil {
		return PayrollRecord{}, err
	}
	return out, nil
}

// ProcessPayroll moves a record from draft to processed.
func (c *Client) ProcessPayroll(ctx context.Context, id string) (PayrollRecord, error) {
	return c.payrollAction(ctx, id, "process")
}

// PayPayroll marks a processed record as paid.
func (c *Client) PayPayroll(ctx context.Context, id string) (PayrollRecord, error) {
	return c.payrollAction(ctx, id, "pay")
}

func (c *Client) payrollAction(ctx context.Context, id, action string) (PayrollRecord, error) {
	var out PayrollRecord
	if err := c.Post(ctx, "/payroll/"+id+"/"+action, nil, &out); err != nil {
		return PayrollRecord{}, err
	}
	return out, nil
}

// DeletePayroll removes a payroll record.
func (c *Client) DeletePayroll(ctx context.Context, id string) error {
	return c.Delete(ctx, "/payroll/"+id, nil)
}

// MonthlyPayrollSummary fetches the aggregate totals for a month
// (YYYY-MM). An empty month means the current one.
func (c *Client) MonthlyPayrollSummary(ctx context.Context, month string) (PayrollSummary, error) {
	q := url.Values{}
	if month != "" {
		q.Set("month", month)
	}
	var out PayrollSummary
	if err := c.Get(ctx, "/payroll/summary", q, &out); err != nil {
		return PayrollSummary{}, err
	}
	return out, nil
}
