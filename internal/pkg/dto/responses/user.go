package responses

type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

type AdminStatus struct {
	IsAdmin bool `json:"isAdmin"`
}
