package handler

// LoginResponse exposes loginResponse to external tests.
type LoginResponse = loginResponse
