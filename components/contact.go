package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"streammax/content"
	"streammax/landing"
	"streammax/models"
)

type formField struct {
	name        string
	label       string
	inputType   string
	placeholder string
	required    bool
	value       string
}

func fieldError(errs map[string]string, name string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(Class("field-error text-sm"), ID(name+"-error"), g.Text(msg))
}

func textField(f formField, errs map[string]string) g.Node {
	label := f.label
	if f.required {
		label += " *"
	}
	return Div(
		Class("space-y-2"),
		Label(For(f.name), g.Text(label)),
		Input(
			ID(f.name),
			Name(f.name),
			Type(f.inputType),
			Placeholder(f.placeholder),
			Value(f.value),
			Class("input"),
			g.If(f.required, Required()),
		),
		fieldError(errs, f.name),
	)
}

func ContactForm(state models.ViewState) g.Node {
	form := state.Form
	errs := state.FieldErrors

	return Card(
		"",
		CardHeader(
			"Get Your Free Test Account",
			"Fill out the details below and we'll contact you to set up your 24-hour free trial",
			"text-2xl",
		),
		Div(
			Class("card-content"),
			g.If(state.Notice != "", Div(Class("notice"), Role("alert"), g.Text(state.Notice))),
			g.If(state.FormError != "", Div(Class("form-error"), Role("alert"), g.Text(state.FormError))),
			Form(
				Method("post"),
				Action("/contact"),
				Class("space-y-6"),
				textField(formField{landing.FieldName, "Full Name", "text", "Enter your full name", true, form.Name}, errs),
				textField(formField{landing.FieldEmail, "Email Address", "email", "Enter your email address", true, form.Email}, errs),
				textField(formField{landing.FieldPhone, "Phone Number", "tel", "Enter your phone number", false, form.Phone}, errs),
				Div(
					Class("space-y-2"),
					Label(For(landing.FieldMessage), g.Text("Additional Information")),
					Textarea(
						ID(landing.FieldMessage),
						Name(landing.FieldMessage),
						Rows("4"),
						Placeholder("Tell us about your viewing preferences, device types, or any specific requirements..."),
						Class("input"),
						g.Text(form.Message),
					),
					fieldError(errs, landing.FieldMessage),
				),
				Button(Type("submit"), Class(buttonClass(models.VariantHero, "lg")+" w-full"), g.Text("Request Free 24-Hour Test")),
				P(Class("text-sm text-muted text-center"), g.Text("* We'll contact you within 24 hours to set up your test account")),
			),
		),
	)
}

func contactLine(icon, title string, lines ...g.Node) g.Node {
	return Div(
		Class("flex items-start space-x-4"),
		Icon(icon, "h-6 w-6 mt-1"),
		Div(
			H4(Class("font-semibold"), g.Text(title)),
			g.Group(lines),
		),
	)
}

func ContactInfo(info content.ContactInfo) g.Node {
	address := make([]g.Node, 0, len(info.AddressLines)*2)
	for i, line := range info.AddressLines {
		if i > 0 {
			address = append(address, Br())
		}
		address = append(address, g.Text(line))
	}

	return Card(
		"",
		CardHeader("Contact Information", "", "text-xl"),
		Div(
			Class("card-content space-y-6"),
			contactLine("mail", "Email Support",
				P(Class("text-muted"), g.Text(info.Email)),
				P(Class("text-sm text-muted"), g.Text(info.EmailNote)),
			),
			contactLine("phone", "Phone Support",
				P(Class("text-muted"), g.Text(info.Phone)),
				P(Class("text-sm text-muted"), g.Text(info.PhoneNote)),
			),
			contactLine("map-pin", "Business Address",
				P(Class("text-muted"), g.Group(address)),
			),
		),
	)
}

func Perks(perks []string) g.Node {
	return Card(
		"",
		CardHeader("What You Get", "", "text-xl"),
		Div(
			Class("card-content"),
			Ul(Class("space-y-3"), g.Group(g.Map(perks, CheckItem))),
		),
	)
}

func Contact(c *content.Catalog, state models.ViewState) g.Node {
	return Section(
		ID(content.SectionContact),
		Class("py-20 px-4 bg-contact"),
		Div(
			Class("max-w-6xl mx-auto"),
			SectionHeading(
				"Request Your Free 24-Hour Test",
				"Experience our premium IPTV service with a free 24-hour trial. Fill out the form below and we'll set up your test account within hours.",
			),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),
				ContactForm(state),
				Div(
					Class("space-y-8"),
					ContactInfo(c.Contact()),
					Perks(c.Perks()),
				),
			),
		),
	)
}
