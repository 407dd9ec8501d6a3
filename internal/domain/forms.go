package domain

// DesignSubmission is the community design form.
type DesignSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DesignTitle string `json:"designTitle"`
	Description string `json:"description"`
}

func (f DesignSubmission) Validate() error {
	return requireFields(map[string]string{
		"name":        f.Name,
		"email":       f.Email,
		"designTitle": f.DesignTitle,
		"description": f.Description,
	})
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (f ContactMessage) Validate() error {
	return requireFields(map[string]string{
		"name":    f.Name,
		"email":   f.Email,
		"subject": f.Subject,
		"message": f.Message,
	})
}
