// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import "errors"

var ErrSendingMail = errors.New("failed to send email")
