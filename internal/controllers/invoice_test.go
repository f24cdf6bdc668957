package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/internal/types"
	"github.com/fintrack-ph/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testInvoice() controllers.InvoiceEditable {
	return controllers.InvoiceEditable{
		Customer: "Acme Corp",
		Date:     types.NewDate(2024, 1, 5),
		DueDate:  types.NewDate(2024, 2, 5),
		Items: []controllers.InvoiceItemEditable{
			{Description: "Website redesign", Quantity: decimal.NewFromInt(2), Price: decimal.RequireFromString("12500.00")},
			{Description: "Hosting", Quantity: decimal.NewFromInt(12), Price: decimal.RequireFromString("99.50")},
		},
		Tax: decimal.NewFromInt(3000),
	}
}

func (suite *TestSuiteStandard) createTestInvoice(i controllers.InvoiceEditable) controllers.Invoice {
	r := suite.request(http.MethodPost, "http://example.com/api/invoices", i)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var invoice controllers.Invoice
	test.DecodeResponse(suite.T(), &r, &invoice)
	return invoice
}

func (suite *TestSuiteStandard) TestInvoicesCreate() {
	invoice := suite.createTestInvoice(testInvoice())

	suite.Assert().Equal("INV-0001", invoice.InvoiceNumber)
	suite.Assert().Equal("Draft", invoice.Status)
	suite.Require().Len(invoice.Items, 2)
	suite.Assert().Equal("Website redesign", invoice.Items[0].Description)
	suite.Assert().True(decimal.NewFromInt(25000).Equal(invoice.Items[0].Amount))
	suite.Assert().True(decimal.NewFromInt(1194).Equal(invoice.Items[1].Amount))
	suite.Assert().True(decimal.NewFromInt(26194).Equal(invoice.Subtotal), "subtotal is %s", invoice.Subtotal)
	suite.Assert().True(decimal.NewFromInt(29194).Equal(invoice.Total), "total is %s", invoice.Total)

	// Numbers are sequential per user
	suite.Assert().Equal("INV-0002", suite.createTestInvoice(testInvoice()).InvoiceNumber)

	stranger := suite.signUp("stranger@example.com")
	r := suite.requestAs(stranger.Token, http.MethodPost, "http://example.com/api/invoices", testInvoice())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	var foreign controllers.Invoice
	test.DecodeResponse(suite.T(), &r, &foreign)
	suite.Assert().Equal("INV-0001", foreign.InvoiceNumber)
}

func (suite *TestSuiteStandard) TestInvoicesCreateFails() {
	tests := []struct {
		name   string
		modify func(*controllers.InvoiceEditable)
		err    string
	}{
		{"No items", func(i *controllers.InvoiceEditable) { i.Items = nil }, "missing required fields: items"},
		{"Due before date", func(i *controllers.InvoiceEditable) { i.DueDate = types.NewDate(2024, 1, 1) }, "the due date must not be before the invoice date"},
		{"Zero quantity", func(i *controllers.InvoiceEditable) { i.Items[0].Quantity = decimal.Zero }, "item quantities must be greater than zero"},
		{"Negative price", func(i *controllers.InvoiceEditable) { i.Items[1].Price = decimal.NewFromInt(-1) }, "amounts must not be negative"},
		{"Negative tax", func(i *controllers.InvoiceEditable) { i.Tax = decimal.NewFromInt(-1) }, "amounts must not be negative"},
		{"Blank item description", func(i *controllers.InvoiceEditable) { i.Items[0].Description = " " }, "missing required fields: description"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			invoice := testInvoice()
			tt.modify(&invoice)

			r := suite.request(http.MethodPost, "http://example.com/api/invoices", invoice)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesUpdate() {
	invoice := suite.createTestInvoice(testInvoice())
	path := fmt.Sprintf("http://example.com/api/invoices/%s", invoice.ID)

	// Replacing the items recalculates all totals
	r := suite.request(http.MethodPatch, path, map[string]any{
		"items": []map[string]any{{"description": "Consulting", "quantity": 3, "price": 1000}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Invoice
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Require().Len(updated.Items, 1)
	suite.Assert().Equal("Consulting", updated.Items[0].Description)
	suite.Assert().True(decimal.NewFromInt(3000).Equal(updated.Subtotal), "subtotal is %s", updated.Subtotal)
	suite.Assert().True(decimal.NewFromInt(6000).Equal(updated.Total), "total is %s", updated.Total)
	suite.Assert().Equal(invoice.InvoiceNumber, updated.InvoiceNumber)

	// Tax only
	r = suite.request(http.MethodPatch, path, map[string]any{"tax": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.NewFromInt(3000).Equal(updated.Total), "total is %s", updated.Total)

	// Status changes keep the items
	r = suite.request(http.MethodPatch, path, map[string]any{"status": "Paid"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Paid", updated.Status)
	suite.Assert().Len(updated.Items, 1)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"Due before date", map[string]any{"dueDate": "2023-12-31"}},
		{"Date after due", map[string]any{"date": "2024-03-01"}},
		{"Empty items", map[string]any{"items": []any{}}},
		{"Blank customer", map[string]any{"customer": ""}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoicesOverdueAndFilter() {
	past := testInvoice()
	suite.createTestInvoice(past)

	paid := testInvoice()
	paid.Status = "Paid"
	suite.createTestInvoice(paid)

	r := suite.request(http.MethodGet, "http://example.com/api/invoices", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var invoices []controllers.Invoice
	test.DecodeResponse(suite.T(), &r, &invoices)
	suite.Require().Len(invoices, 2)
	for _, invoice := range invoices {
		suite.Assert().Equal(invoice.Status != "Paid", invoice.Overdue, "invoice %s", invoice.InvoiceNumber)
	}

	r = suite.request(http.MethodGet, "http://example.com/api/invoices?status=Paid", "")
	test.DecodeResponse(suite.T(), &r, &invoices)
	suite.Require().Len(invoices, 1)
	suite.Assert().Equal("INV-0002", invoices[0].InvoiceNumber)
}

func (suite *TestSuiteStandard) TestInvoicesDelete() {
	invoice := suite.createTestInvoice(testInvoice())
	path := fmt.Sprintf("http://example.com/api/invoices/%s", invoice.ID)

	r := suite.request(http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no invoice matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}
