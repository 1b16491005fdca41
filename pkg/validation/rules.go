package validation

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"asset-guardian/pkg/constants"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("rpn_factor", isRPNFactor); err != nil {
		return err
	}
	if err := v.RegisterValidation("asset_status", isOneOf(constants.AssetStatuses)); err != nil {
		return err
	}
	if err := v.RegisterValidation("maintenance_type", isOneOf(constants.MaintenanceTypes)); err != nil {
		return err
	}
	if err := v.RegisterValidation("maintenance_status", isOneOf(constants.MaintenanceStatuses)); err != nil {
		return err
	}
	if err := v.RegisterValidation("report_type", isOneOf(constants.ReportTypes)); err != nil {
		return err
	}
	if err := v.RegisterValidation("report_status", isOneOf(constants.ReportStatuses)); err != nil {
		return err
	}
	if err := v.RegisterValidation("technician_status", isOneOf(constants.TechnicianStatuses)); err != nil {
		return err
	}
	return nil
}

// isRPNFactor - severity/occurrence/detection: целое от 1 до 10
func isRPNFactor(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		return n >= constants.RPNFactorMin && n <= constants.RPNFactorMax
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := field.Uint()
		return n >= constants.RPNFactorMin && n <= constants.RPNFactorMax
	}
	return false
}

func isOneOf(allowed []string) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}
