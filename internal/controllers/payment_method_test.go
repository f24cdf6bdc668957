package controllers_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/fintrack-ph/backend/internal/controllers"
	"github.com/fintrack-ph/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestPaymentMethod(p controllers.PaymentMethodEditable) controllers.PaymentMethod {
	if p.Type == "" {
		p.Type = "Credit Card"
	}

	if p.AccountNumber == "" {
		p.AccountNumber = "4111111111111111"
	}

	if p.AccountName == "" {
		p.AccountName = "Juan Dela Cruz"
	}

	r := suite.request(http.MethodPost, "http://example.com/api/payment-methods", p)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var method controllers.PaymentMethod
	test.DecodeResponse(suite.T(), &r, &method)
	return method
}

func (suite *TestSuiteStandard) paymentMethods() []controllers.PaymentMethod {
	r := suite.request(http.MethodGet, "http://example.com/api/payment-methods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var methods []controllers.PaymentMethod
	test.DecodeResponse(suite.T(), &r, &methods)
	return methods
}

func defaults(methods []controllers.PaymentMethod) int {
	n := 0
	for _, m := range methods {
		if m.IsDefault {
			n++
		}
	}
	return n
}

// TestPaymentMethodsSingleDefault verifies that at most one payment method
// is the default one after every change.
func (suite *TestSuiteStandard) TestPaymentMethodsSingleDefault() {
	first := suite.createTestPaymentMethod(controllers.PaymentMethodEditable{IsDefault: true})
	suite.Assert().True(first.IsDefault)
	suite.Assert().Equal("Visa", first.Provider)

	second := suite.createTestPaymentMethod(controllers.PaymentMethodEditable{Type: "GCash", AccountNumber: "09171234567", IsDefault: true})
	suite.Assert().True(second.IsDefault)

	methods := suite.paymentMethods()
	suite.Require().Len(methods, 2)
	suite.Assert().Equal(1, defaults(methods))
	suite.Assert().Equal(second.ID, methods[0].ID, "the default is listed first")

	// Switching back
	r := suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/api/payment-methods/%s", first.ID), map[string]any{"isDefault": true, "notes": "Main card"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.PaymentMethod
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(updated.IsDefault)
	suite.Assert().Equal("Main card", updated.Notes)

	methods = suite.paymentMethods()
	suite.Assert().Equal(1, defaults(methods))
	suite.Assert().Equal(first.ID, methods[0].ID)

	// Unsetting leaves no default
	r = suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/api/payment-methods/%s", first.ID), map[string]any{"isDefault": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(0, defaults(suite.paymentMethods()))

	// Defaults of other users are not touched
	stranger := suite.signUp("stranger@example.com")
	r = suite.requestAs(stranger.Token, http.MethodPost, "http://example.com/api/payment-methods", controllers.PaymentMethodEditable{Type: "Other", AccountNumber: "1234", AccountName: "Jose", IsDefault: true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = suite.request(http.MethodPatch, fmt.Sprintf("http://example.com/api/payment-methods/%s", second.ID), map[string]any{"isDefault": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.requestAs(stranger.Token, http.MethodGet, "http://example.com/api/payment-methods", "")
	var foreign []controllers.PaymentMethod
	test.DecodeResponse(suite.T(), &r, &foreign)
	suite.Require().Len(foreign, 1)
	suite.Assert().True(foreign[0].IsDefault)
}

// TestPaymentMethodsConcurrentDefault switches the default payment method
// from many requests at once.
func (suite *TestSuiteStandard) TestPaymentMethodsConcurrentDefault() {
	const n = 8

	methods := make([]controllers.PaymentMethod, n)
	for i := range methods {
		methods[i] = suite.createTestPaymentMethod(controllers.PaymentMethodEditable{AccountNumber: fmt.Sprintf("411111111111%04d", i)})
	}

	// All requests share one router, the metrics collectors can only be registered once
	r := test.Router(suite.T())
	auth := test.Bearer(suite.token)

	codes := make([]int, n)
	var wg sync.WaitGroup
	for i, method := range methods {
		wg.Add(1)
		go func(i int, method controllers.PaymentMethod) {
			defer wg.Done()
			recorder := test.Serve(suite.T(), r, http.MethodPatch, fmt.Sprintf("http://example.com/api/payment-methods/%s", method.ID), map[string]any{"isDefault": true}, auth)
			codes[i] = recorder.Code
		}(i, method)
	}
	wg.Wait()

	for i, code := range codes {
		suite.Assert().Equal(http.StatusOK, code, "request %d", i)
	}

	recorder := test.Serve(suite.T(), r, http.MethodGet, "http://example.com/api/payment-methods", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var listed []controllers.PaymentMethod
	test.DecodeResponse(suite.T(), &recorder, &listed)
	suite.Require().Len(listed, n)
	suite.Assert().Equal(1, defaults(listed))
	suite.Assert().True(listed[0].IsDefault, "the default is listed first")
}

func (suite *TestSuiteStandard) TestPaymentMethodsCreateFails() {
	r := suite.request(http.MethodPost, "http://example.com/api/payment-methods", map[string]any{"type": "Credit Card"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("missing required fields: accountNumber, accountName", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestPaymentMethodsDelete() {
	method := suite.createTestPaymentMethod(controllers.PaymentMethodEditable{IsDefault: true})

	r := suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/api/payment-methods/%s", method.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var message struct {
		Message string `json:"message"`
	}
	test.DecodeResponse(suite.T(), &r, &message)
	suite.Assert().Equal("Payment method deleted successfully", message.Message)
	suite.Assert().Len(suite.paymentMethods(), 0)
}

func (suite *TestSuiteStandard) TestPaymentMethodsDetect() {
	tests := []struct {
		name      string
		body      controllers.DetectRequest
		detected  bool
		provider  string
		formatted string
	}{
		{"Visa", controllers.DetectRequest{AccountNumber: "4111 1111 1111 1111"}, true, "Visa", "4111 1111 1111 1111"},
		{"Mastercard 2-series", controllers.DetectRequest{AccountNumber: "2221000000000009"}, true, "Mastercard", "2221 0000 0000 0009"},
		{"American Express", controllers.DetectRequest{AccountNumber: "378282246310005"}, true, "American Express", "3782 8224 6310 005"},
		{"GCash", controllers.DetectRequest{AccountNumber: "09171234567"}, true, "GCash", "0917 1234 567"},
		{"Explicit e-wallet", controllers.DetectRequest{AccountNumber: "4111111111111111", Type: "Maya"}, false, "", "4111 1111 1111 1111"},
		{"Too short", controllers.DetectRequest{AccountNumber: "41"}, false, "", "41"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "http://example.com/api/payment-methods/detect", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.DetectResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.detected, response.Detected)
			assert.Equal(t, tt.formatted, response.Formatted)

			if tt.detected {
				assert.Equal(t, tt.provider, response.Provider)
			}
		})
	}

	r := suite.request(http.MethodPost, "http://example.com/api/payment-methods/detect", controllers.DetectRequest{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
