package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/utez-accounts/internal/forms"
)

const maxFormMemory = 1 << 20

// decodeRequest fills dst from a JSON body or, for HTML form posts, from the
// submitted form values using fromForm.
func decodeRequest(r *http.Request, dst any, fromForm func(url.Values)) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return err
		}
		fromForm(r.PostForm)
		return nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return err
		}
		fromForm(r.PostForm)
		return nil
	default:
		return json.NewDecoder(r.Body).Decode(dst)
	}
}

func registrationFromForm(in *forms.RegistrationInput) func(url.Values) {
	return func(v url.Values) {
		in.Email = v.Get("email")
		in.Name = v.Get("name")
		in.Surname = v.Get("surname")
		in.ControlNumber = v.Get("control_number")
		in.Age = forms.NumericString(v.Get("age"))
		in.Tel = v.Get("tel")
		in.Password1 = v.Get("password1")
		in.Password2 = v.Get("password2")
	}
}

func loginFromForm(in *forms.LoginInput) func(url.Values) {
	return func(v url.Values) {
		in.Email = v.Get("email")
		in.Password = v.Get("password")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
