// Package validator classifies donor form input.
//
// Each rule is a small Rule value holding a Check func together with
// translation-friendly error metadata. Rules are evaluated with Apply, which
// collects every failure, or First, which stops at the first one. Failures
// are returned as ValidationErrors, a slice type that implements error.
//
// Field-level validation is driven by an explicit Kind tag supplied by the
// caller (text, email, tel, date-of-birth, date-not-future,
// required-generic). Validate builds the rule chain for a FieldSpec in
// priority order and reports the first failure:
//
//  1. required: an empty trimmed value fails for required-generic fields and
//     any field marked Required.
//  2. email: local@domain.tld, a single "@", no whitespace.
//  3. tel: exactly ten digits after stripping every non-digit character.
//  4. dates: YYYY-MM-DD, and not after the current calendar day.
//
// Empty optional values skip rules 2-4.
//
// # Usage
//
//	res := validator.Validate(validator.FieldSpec{
//	    Name:  "email",
//	    Kind:  validator.KindEmail,
//	    Value: "donor@example.com",
//	}, time.Now())
//	if !res.Valid {
//	    // show res.Message next to the field
//	}
//
// Whole forms are checked with ValidateForm:
//
//	if err := validator.ValidateForm(specs, time.Now()); err != nil {
//	    for _, field := range validator.ExtractValidationErrors(err).Fields() {
//	        // ...
//	    }
//	}
//
// The package holds no state and is safe for concurrent use.
package validator
