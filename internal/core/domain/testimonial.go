package domain

// Testimonial is a free-form document. Only two keys carry meaning: "_id" and
// "approved". A testimonial without "approved" is pending moderation.
type Testimonial map[string]any

const (
	TestimonialIDKey       = "_id"
	TestimonialApprovedKey = "approved"
)

// NewTestimonial copies the submitted fields, dropping any client-supplied
// identifier so the store assigns one.
func NewTestimonial(fields map[string]any) Testimonial {
	t := make(Testimonial, len(fields))
	for k, v := range fields {
		if k == TestimonialIDKey {
			continue
		}
		t[k] = v
	}
	return t
}

// Approved reports whether the testimonial has been approved by an admin.
func (t Testimonial) Approved() bool {
	v, ok := t[TestimonialApprovedKey].(bool)
	return ok && v
}

// Pending reports whether the approved field is absent.
func (t Testimonial) Pending() bool {
	_, ok := t[TestimonialApprovedKey]
	return !ok
}
