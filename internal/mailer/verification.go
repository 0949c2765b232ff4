// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"fmt"
	"html"
	"net/url"
)

const verificationSubject = "Verify Your Account"

// NewVerificationMessage builds the email that proves ownership of
// emailAddress. code is the transport (base64) form of the verification code.
func NewVerificationMessage(verifyURL, emailAddress, code string) Message {
	link := VerificationLink(verifyURL, emailAddress, code)

	return Message{
		To:      emailAddress,
		Subject: verificationSubject,
		Text: fmt.Sprintf("To verify your account, please click the following link "+
			"or paste it into your web browser's address bar:\n\n    <%s>", link),
		HTML: fmt.Sprintf(`<p>To verify your account, please click the button below:</p>`+
			`<a href="%s"><button>Verify Account</button></a>`, html.EscapeString(link)),
	}
}

// VerificationLink returns verifyURL with the emailAddress and code query
// parameters escaped.
func VerificationLink(verifyURL, emailAddress, code string) string {
	return verifyURL + "?emailAddress=" + url.QueryEscape(emailAddress) + "&code=" + url.QueryEscape(code)
}
