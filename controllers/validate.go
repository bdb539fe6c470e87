package controllers

import "github.com/go-playground/validator/v10"

// Shared validator for request bodies; handlers reject invalid input
// with 400 before touching the store.
var validate = validator.New()
