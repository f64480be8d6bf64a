package catalog

// Book is a catalog entry. Authors and genres are many-to-many and are
// always loaded together with the book when it is served over the API.
type Book struct {
	ID      int64    `json:"id" gorm:"primaryKey"`
	Title   string   `json:"title" gorm:"not null" validate:"required"`
	Authors []Author `json:"authors" gorm:"many2many:book_authors;constraint:OnDelete:CASCADE"`
	Genres  []Genre  `json:"genres" gorm:"many2many:book_genres;constraint:OnDelete:CASCADE"`
}

func (Book) TableName() string {
	return "books"
}

// Author is persisted independently and may be referenced by any number
// of books. The back-collection stays out of JSON so serialization never
// chases the Book <-> Author cycle.
type Author struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null" validate:"required"`
	Books []Book `json:"-" gorm:"many2many:book_authors"`
}

func (Author) TableName() string {
	return "authors"
}

type Genre struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null" validate:"required"`
	Books []Book `json:"-" gorm:"many2many:book_genres"`
}

func (Genre) TableName() string {
	return "genres"
}
