package dto

type CredencialesRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type MensajeResponse struct {
	Respuesta string `json:"respuesta"`
}
