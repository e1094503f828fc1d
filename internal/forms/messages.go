package forms

// Error messages shown to the portal user.
const (
	MsgRequired            = "Este campo es obligatorio."
	MsgInvalid             = "Introduzca un valor válido."
	MsgEmailDomain         = "El correo electrónico debe ser del dominio @utez.edu.mx."
	MsgNameTooShort        = "El nombre debe tener al menos 2 caracteres."
	MsgNameTooLong         = "El nombre no puede tener más de 50 caracteres."
	MsgControlNumberLength = "La matrícula debe tener exactamente 10 caracteres."
	MsgControlNumberFormat = "El número de control debe tener el formato correcto: 5 números, 2 letras minúsculas y 3 números (ejemplo: 20223tn134)."
	MsgAge                 = "Introduzca un número entero."
	MsgTel                 = "El teléfono debe tener exactamente 10 dígitos."
	MsgPassword            = "La contraseña debe tener al menos 8 caracteres, contener un número, una letra mayúscula y un símbolo especial (!, #, $, %, ^, &, *)."
	MsgPasswordMismatch    = "Las contraseñas no coinciden."
)

// messages maps "field.tag" (or just "tag") to the message reported for a failed rule.
var messages = map[string]string{
	"required":                     MsgRequired,
	"utezemail":                    MsgEmailDomain,
	"name.min":                     MsgNameTooShort,
	"name.max":                     MsgNameTooLong,
	"control_number.len":           MsgControlNumberLength,
	"control_number.controlnumber": MsgControlNumberFormat,
	"tel.len":                      MsgTel,
	"tel":                          MsgTel,
	"password":                     MsgPassword,
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := messages[tag]; ok {
		return msg
	}
	return MsgInvalid
}
