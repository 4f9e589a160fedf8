package Models

type User struct {
	Id         uint   `json:"id" gorm:"primaryKey"`
	EmployeeID *uint  `json:"employee_id" gorm:"index"`
	Name       string `json:"name" gorm:"size:255"`
	Username   string `json:"username" gorm:"size:255;uniqueIndex;not null"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission"`
}
