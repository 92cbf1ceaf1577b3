package models

import (
	"errors"
	"fmt"
	"strconv"
)

// Внешний идентификатор вопроса — публичный контракт:
//   - "q{number}v{version}" — опубликованный вопрос;
//   - "q{number}"           — последняя опубликованная версия номера;
//   - "d{id}"               — черновик.
//
// Любая другая форма — недоверенный ввод: разбор обязан упасть до какого-либо
// обращения к хранилищу (граница безопасности, не «не найдено»).

// ErrUntrustedExternalID — внешний идентификатор не соответствует контракту.
var ErrUntrustedExternalID = errors.New("untrusted external id")

// ExternalID — результат разбора внешнего идентификатора.
type ExternalID struct {
	// Draft — форма "d{id}"; заполнен ID.
	Draft bool
	// ID — внутренний идентификатор черновика (форма "d").
	ID int64
	// Number — номер вопроса (форма "q").
	Number int64
	// Version — номер версии; nil => «последняя опубликованная» (форма "q" без "v").
	Version *int32
}

// FormatExternalID возвращает внешнюю форму идентификатора вопроса.
func FormatExternalID(q *Question) string {
	if q.IsPublished() {
		return fmt.Sprintf("q%dv%d", q.Number, *q.Version)
	}

	return fmt.Sprintf("d%d", q.ID)
}

// ParseExternalID разбирает внешний идентификатор.
// Разбор строгий: вся строка должна соответствовать одной из двух форм,
// хвостовой мусор не допускается. При любом отклонении — ErrUntrustedExternalID.
func ParseExternalID(s string) (ExternalID, error) {
	if len(s) < 2 {
		return ExternalID{}, ErrUntrustedExternalID
	}

	switch s[0] {
	case 'd':
		id, err := parseDigits(s[1:])
		if err != nil {
			return ExternalID{}, ErrUntrustedExternalID
		}

		return ExternalID{Draft: true, ID: id}, nil

	case 'q':
		rest := s[1:]
		numStr := rest
		var verStr string

		for i := 0; i < len(rest); i++ {
			if rest[i] == 'v' {
				numStr, verStr = rest[:i], rest[i+1:]
				break
			}
		}

		number, err := parseDigits(numStr)
		if err != nil {
			return ExternalID{}, ErrUntrustedExternalID
		}

		if numStr == rest {
			// Форма без версии: "q{number}".
			return ExternalID{Number: number}, nil
		}

		v64, err := parseDigits(verStr)
		if err != nil || v64 > int64(^uint32(0)>>1) {
			return ExternalID{}, ErrUntrustedExternalID
		}

		v := int32(v64)

		return ExternalID{Number: number, Version: &v}, nil
	}

	return ExternalID{}, ErrUntrustedExternalID
}

// parseDigits разбирает непустую строку из одних десятичных цифр.
func parseDigits(s string) (int64, error) {
	if s == "" {
		return 0, ErrUntrustedExternalID
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrUntrustedExternalID
		}
	}

	return strconv.ParseInt(s, 10, 64)
}
