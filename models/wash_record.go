package models

import "time"

// ServiceDateLayout is the calendar layout used for WashRecord.ServiceDate.
const ServiceDateLayout = "2006-01-02"

// WashRecord is one serviced-vehicle transaction. The bson names follow the
// documents already stored in the lavagens collection.
type WashRecord struct {
	ID           string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	ServiceDate  string    `json:"data" bson:"data" gorm:"type:varchar(10);index;not null"`
	VehicleType  string    `json:"tipo_veiculo" bson:"tipo_veiculo" gorm:"type:varchar(100)"`
	BusinessArea string    `json:"area_negocio" bson:"area_negocio" gorm:"type:varchar(100)"`
	WasherName   string    `json:"lavador" bson:"lavador" gorm:"type:varchar(255)"`
	WashType     string    `json:"tipo_lavagem" bson:"tipo_lavagem" gorm:"type:varchar(255)"`
	CompanyKind  string    `json:"empresa_tipo" bson:"empresa_tipo" gorm:"type:varchar(20)"`
	CompanyName  string    `json:"empresa_nome" bson:"empresa_nome" gorm:"type:varchar(255)"`
	TractorPlate string    `json:"matricula_trator" bson:"matricula_trator" gorm:"type:varchar(20)"`
	TrailerPlate string    `json:"matricula_reboque" bson:"matricula_reboque" gorm:"type:varchar(20)"`
	Amount       float64   `json:"valor" bson:"valor"`
	Notes        string    `json:"observacoes" bson:"observacoes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" gorm:"index;not null"`
}

func (WashRecord) TableName() string {
	return "lavagens"
}

// ServiceTime parses ServiceDate. Records written by older clients may carry
// dates in other shapes, callers decide what to do with the error.
func (w WashRecord) ServiceTime() (time.Time, error) {
	return time.Parse(ServiceDateLayout, w.ServiceDate)
}

// WashRecordInput is the create payload. Required text fields may be empty
// strings but must be present.
type WashRecordInput struct {
	ServiceDate  *string  `json:"data" binding:"required"`
	VehicleType  *string  `json:"tipo_veiculo" binding:"required"`
	BusinessArea *string  `json:"area_negocio" binding:"required"`
	WasherName   *string  `json:"lavador" binding:"required"`
	WashType     *string  `json:"tipo_lavagem" binding:"required"`
	CompanyKind  *string  `json:"empresa_tipo" binding:"required"`
	CompanyName  *string  `json:"empresa_nome" binding:"required"`
	TractorPlate string   `json:"matricula_trator"`
	TrailerPlate string   `json:"matricula_reboque"`
	Amount       *float64 `json:"valor" binding:"required,gte=0"`
	Notes        string   `json:"observacoes"`
}

// ToRecord copies the payload into a WashRecord without id or timestamp.
func (in WashRecordInput) ToRecord() WashRecord {
	return WashRecord{
		ServiceDate:  deref(in.ServiceDate),
		VehicleType:  deref(in.VehicleType),
		BusinessArea: deref(in.BusinessArea),
		WasherName:   deref(in.WasherName),
		WashType:     deref(in.WashType),
		CompanyKind:  deref(in.CompanyKind),
		CompanyName:  deref(in.CompanyName),
		TractorPlate: in.TractorPlate,
		TrailerPlate: in.TrailerPlate,
		Amount:       derefFloat(in.Amount),
		Notes:        in.Notes,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
