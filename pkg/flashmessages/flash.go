package flashmessages

import (
	"encoding/json"

	"wallof.love/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashErrorKey    = "flash_error"
	FlashSuccessKey  = "flash_success"
	flashFormDataKey = "flash_form_data"
)

// FlashData bir sonraki istekte bir kez gösterilecek mesajlardır.
type FlashData struct {
	Success string
	Error   string
}

// SetFlashMessage mesajı oturuma yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve oturumdan siler.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := utils.SessionStart(c)
	if err != nil {
		return data, err
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	return data, sess.Save()
}

// SetFlashFormData hatalı gönderimden sonra formu tekrar doldurmak için veriyi saklar.
// Session deposu gob kullandığından veri JSON metni olarak yazılır.
func SetFlashFormData(c *fiber.Ctx, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini okur ve siler. Yoksa boş map döner.
func GetFlashFormData(c *fiber.Ctx) map[string]any {
	out := map[string]any{}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return out
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok {
		return out
	}
	sess.Delete(flashFormDataKey)
	_ = sess.Save()
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}
