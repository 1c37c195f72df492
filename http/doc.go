// Package http provides request and response helpers for the registration
// endpoints.
//
// # Request
//
// Request wraps *http.Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Read the form fields in one pass (form, multipart or JSON body)
//	snapshot, err := req.Snapshot()
//
//	// Bind JSON / form body into a struct
//	var payload struct {
//	    Username string `json:"username"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	name  := req.Input("username", "default")
//	all   := req.All()              // map[string]string
//	field := req.RouteParam("field") // requires chi
//	req.IsJSON()                     // Accept or Content-Type is JSON
//
// # Response
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)                  // raw JSON with status
//	res.Success(data)                    // 200 {"data": ...}
//	res.NoContent()                      // 204
//	res.Error(400, "bad input")          // {"message": "bad input"}
//	res.FormResult(report, states)       // 200 or 422 {"valid": ..., "fields": {...}}
//	res.FieldResult("email", result)     // 200 {"field": "email", "valid": ..., "message": ...}
//	res.ValidationError(report.Errors()) // 422 {"errors": {"field": ["msg"]}}
//
// # FieldStates
//
// FieldStates is the presenter used by HTTP handlers: it records each
// field's error/success state so it can be serialised or rendered.
//
//	states := gohttp.NewFieldStates()
//	valid := validator.Using(states).ValidateForm(snapshot)
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(gohttp.EmbeddedViews(), ".html")
//	engine.View(w, "register", page)
//	engine.ViewStatus(w, http.StatusUnprocessableEntity, "register", page)
package http
