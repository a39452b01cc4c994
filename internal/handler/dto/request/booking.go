package request

import (
	"io"
	"mime/multipart"

	"storezee/internal/pkg/errs"
	"storezee/internal/usecase/commands"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
)

const (
	DocumentField = "file"
	PhotoField    = "luggage_pic"
)

var (
	ErrTooManyDocuments = errs.New("at most one identity document may be uploaded")
	ErrTooManyPhotos    = errs.New("too many luggage photos")
	ErrFileTooLarge     = errs.New("uploaded file exceeds the size limit")
)

// CreateBookingForm is the multipart body of the booking creation route.
// Semantic checks live in commands.CreateBookingInput.Validate; the tags here
// only bound field sizes. amount is accepted for compatibility and ignored.
type CreateBookingForm struct {
	FullName             string `form:"full_name" binding:"max=255"`
	Email                string `form:"email" binding:"max=254"`
	Phone                string `form:"phone" binding:"max=32"`
	StorageUnitID        string `form:"storage_unit_id" binding:"max=64"`
	StartTime            string `form:"booking_created_time" binding:"max=64"`
	Location             string `form:"storage_booked_location" binding:"max=500"`
	Latitude             string `form:"latitude" binding:"max=32"`
	Longitude            string `form:"longitude" binding:"max=32"`
	Remark               string `form:"user_remark" binding:"max=2000"`
	DurationHours        string `form:"luggage_time" binding:"max=8"`
	Addons               string `form:"addons" binding:"max=2000"`
	IdentificationNumber string `form:"identification_number" binding:"max=100"`
	CityName             string `form:"city_name" binding:"max=100"`
	Amount               string `form:"amount"`
}

func (f *CreateBookingForm) ToInput() (commands.CreateBookingInput, error) {
	var in commands.CreateBookingInput
	if err := copier.Copy(&in, f); err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "copy booking form")
	}
	return in, nil
}

// BindingFieldErrors reports validator failures with the form field names.
func BindingFieldErrors(err error) []commands.FieldError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make([]commands.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "is invalid"
		if fe.Tag() == "max" {
			msg = "must be at most " + fe.Param() + " characters"
		}
		out = append(out, commands.FieldError{Field: formName(fe.StructField()), Message: msg})
	}
	return out
}

var formNames = map[string]string{
	"FullName":             "full_name",
	"Email":                "email",
	"Phone":                "phone",
	"StorageUnitID":        "storage_unit_id",
	"StartTime":            "booking_created_time",
	"Location":             "storage_booked_location",
	"Latitude":             "latitude",
	"Longitude":            "longitude",
	"Remark":               "user_remark",
	"DurationHours":        "luggage_time",
	"Addons":               "addons",
	"IdentificationNumber": "identification_number",
	"CityName":             "city_name",
}

func formName(structField string) string {
	if n, ok := formNames[structField]; ok {
		return n
	}
	return structField
}

// ReadBookingFiles loads the optional identity document and the ordered photo
// list from a parsed multipart form.
func ReadBookingFiles(form *multipart.Form, maxPhotos int, maxFileBytes int64) (commands.BookingFiles, error) {
	var files commands.BookingFiles
	if form == nil {
		return files, nil
	}

	docs := form.File[DocumentField]
	if len(docs) > 1 {
		return files, ErrTooManyDocuments
	}
	if len(docs) == 1 {
		doc, err := readFile(docs[0], maxFileBytes)
		if err != nil {
			return files, err
		}
		files.Document = &doc
	}

	photos := form.File[PhotoField]
	if maxPhotos > 0 && len(photos) > maxPhotos {
		return files, errs.Wrapf(ErrTooManyPhotos, "got %d, limit %d", len(photos), maxPhotos)
	}
	files.Photos = make([]commands.UploadFile, 0, len(photos))
	for _, fh := range photos {
		p, err := readFile(fh, maxFileBytes)
		if err != nil {
			return files, err
		}
		files.Photos = append(files.Photos, p)
	}
	return files, nil
}

func readFile(fh *multipart.FileHeader, maxBytes int64) (commands.UploadFile, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return commands.UploadFile{}, errs.Wrapf(ErrFileTooLarge, "%s", fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return commands.UploadFile{}, errs.Wrapf(err, "open %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return commands.UploadFile{}, errs.Wrapf(err, "read %s", fh.Filename)
	}
	return commands.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
