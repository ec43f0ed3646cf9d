package storage

import (
	"chat-room/domain"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the stored record. They follow protobuf wire rules so the
// value stays readable by any protobuf tool and can grow without breaking.
//
//	record  { 1: room_id, 2: nickname, 3: repeated message }
//	message { 1: nickname, 2: content, 3: origin }
const (
	recordRoomID   protowire.Number = 1
	recordNickname protowire.Number = 2
	recordMessage  protowire.Number = 3

	messageNickname protowire.Number = 1
	messageContent  protowire.Number = 2
	messageOrigin   protowire.Number = 3
)

func encodeRecord(record domain.PersistedSessionRecord) []byte {
	var b []byte
	b = protowire.AppendTag(b, recordRoomID, protowire.BytesType)
	b = protowire.AppendString(b, record.RoomID)
	b = protowire.AppendTag(b, recordNickname, protowire.BytesType)
	b = protowire.AppendString(b, record.Nickname)
	for _, message := range record.Transcript {
		b = protowire.AppendTag(b, recordMessage, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeMessage(message))
	}
	return b
}

func encodeMessage(message domain.Message) []byte {
	var b []byte
	b = protowire.AppendTag(b, messageNickname, protowire.BytesType)
	b = protowire.AppendString(b, message.SenderNickname)
	b = protowire.AppendTag(b, messageContent, protowire.BytesType)
	b = protowire.AppendString(b, message.Content)
	b = protowire.AppendTag(b, messageOrigin, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(message.Origin))
	return b
}

func decodeRecord(b []byte) (domain.PersistedSessionRecord, error) {
	var record domain.PersistedSessionRecord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return record, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == recordRoomID && typ == protowire.BytesType:
			record.RoomID, n = protowire.ConsumeString(b)
		case num == recordNickname && typ == protowire.BytesType:
			record.Nickname, n = protowire.ConsumeString(b)
		case num == recordMessage && typ == protowire.BytesType:
			var raw []byte
			raw, n = protowire.ConsumeBytes(b)
			if n >= 0 {
				message, err := decodeMessage(raw)
				if err != nil {
					return record, fmt.Errorf("message %d: %w", len(record.Transcript), err)
				}
				record.Transcript = append(record.Transcript, message)
			}
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return record, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return record, nil
}

func decodeMessage(b []byte) (domain.Message, error) {
	var message domain.Message
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return message, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == messageNickname && typ == protowire.BytesType:
			message.SenderNickname, n = protowire.ConsumeString(b)
		case num == messageContent && typ == protowire.BytesType:
			message.Content, n = protowire.ConsumeString(b)
		case num == messageOrigin && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			message.Origin = domain.Origin(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return message, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return message, nil
}
