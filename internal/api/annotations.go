// @title           The Impacts API
// @version         1.0
// @description     Contact inquiries, newsletter signups and status checks for theimpacts.agency.
// @BasePath        /api
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and an admin token. Example: "Bearer impacts_xxx"
package api
