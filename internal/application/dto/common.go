package dto

// Envelope cuerpo uniforme de las respuestas: solo uno de Data o Errors va poblado.
// En éxito Errors es una lista vacía; en error Data es null.
type Envelope struct {
	Data   any      `json:"data"`
	Errors []string `json:"errors"`
}

// OK envuelve una respuesta exitosa.
func OK(data any) Envelope {
	return Envelope{Data: data, Errors: []string{}}
}

// Fail envuelve uno o más mensajes de error.
func Fail(messages ...string) Envelope {
	if messages == nil {
		messages = []string{}
	}
	return Envelope{Data: nil, Errors: messages}
}
