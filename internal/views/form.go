package views

// NonField collects errors that do not belong to a single input.
const NonField = "__all__"

// Form carries submitted values and validation errors back to a template.
type Form struct {
	Values map[string]string
	Errors map[string][]string
}

func NewForm(values map[string]string) *Form {
	if values == nil {
		values = map[string]string{}
	}
	return &Form{Values: values, Errors: map[string][]string{}}
}

func (f *Form) Get(field string) string {
	return f.Values[field]
}

func (f *Form) AddError(field, msg string) {
	f.Errors[field] = append(f.Errors[field], msg)
}

func (f *Form) FieldErrors(field string) []string {
	return f.Errors[field]
}

func (f *Form) NonFieldErrors() []string {
	return f.Errors[NonField]
}

func (f *Form) Valid() bool {
	return len(f.Errors) == 0
}
