package product

type Owner struct {
	ID       uint    `json:"id"`
	FullName *string `json:"full_name,omitempty"`
	Email    string  `json:"email"`
}

type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	OwnerID     uint    `json:"owner_id"`
	Owner       *Owner  `json:"owner,omitempty"`
}

type CreateParams struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
	CategoryID  *uint
}

// UpdateParams carries only the fields a caller wants changed; nil means keep.
type UpdateParams struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	CategoryID  *uint
}

func (p UpdateParams) Empty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.ImageURL == nil &&
		p.CategoryID == nil
}
