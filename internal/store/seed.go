package store

import "github.com/vyrodovalexey/contactbook/internal/model"

// DefaultContacts returns the sample contacts loaded at startup.
func DefaultContacts() []model.Contact {
	return []model.Contact{
		{ID: 1, Name: "Elchin", Surname: "Aliyev", Phone: "50-123-45-67"},
		{ID: 2, Name: "Gunel", Surname: "Mammadova", Phone: "51-234-56-78"},
		{ID: 3, Name: "Nijat", Surname: "Huseynov", Phone: "55-345-67-89"},
		{ID: 4, Name: "Aygun", Surname: "Ismayilova", Phone: "70-456-78-90"},
		{ID: 5, Name: "Elnur", Surname: "Guliyev", Phone: "77-567-89-01"},
		{ID: 6, Name: "Leyla", Surname: "Hajiyeva", Phone: "99-678-90-12"},
		{ID: 7, Name: "Vugar", Surname: "Hasanov", Phone: "10-789-01-23"},
		{ID: 8, Name: "Fidan", Surname: "Karimova", Phone: "40-890-12-34"},
		{ID: 9, Name: "Rashad", Surname: "Mehdiyev", Phone: "60-901-23-45"},
		{ID: 10, Name: "Zahra", Surname: "Ahmadova", Phone: "55-012-34-56"},
	}
}
