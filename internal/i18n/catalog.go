package i18n

import "golang.org/x/text/language"

// messages holds the catalog source per supported language.
// Failure messages take the underlying cause as their only argument.
var messages = map[language.Tag]map[string]string{
	language.English: {
		KeyClaimNotFound:          "Claim not found",
		KeyClaimMustBeModerated:   "Claim must be moderated",
		KeyClaimHasRestrictions:   "Claim has active restrictions",
		KeyClaimAlreadyInList:     "Claim is already in the list",
		KeyTransactionCompleted:   "Transaction has been completed",
		KeyInsufficientRights:     "You have insufficient rights to perform this action",
		KeyClaimsMergeCount:       "Select at least 2 claims to merge and exactly 1 resulting claim",
		KeyClaimSplitCount:        "Select exactly 1 claim to split and at least 2 resulting claims",
		KeyClaimsMergeSuccess:     "Claims have been successfully merged",
		KeyClaimSplitSuccess:      "Claim has been successfully split",
		KeyClaimsMergeFailed:      "Failed to merge claims: %s",
		KeyClaimSplitFailed:       "Failed to split claim: %s",
		KeyGeneralUnexpectedError: "Unexpected error",
	},
	language.French: {
		KeyClaimNotFound:          "Revendication introuvable",
		KeyClaimMustBeModerated:   "La revendication doit être modérée",
		KeyClaimHasRestrictions:   "La revendication a des restrictions actives",
		KeyClaimAlreadyInList:     "La revendication est déjà dans la liste",
		KeyTransactionCompleted:   "La transaction est terminée",
		KeyInsufficientRights:     "Vous n'avez pas les droits suffisants pour effectuer cette action",
		KeyClaimsMergeCount:       "Sélectionnez au moins 2 revendications à fusionner et exactement 1 revendication résultante",
		KeyClaimSplitCount:        "Sélectionnez exactement 1 revendication à diviser et au moins 2 revendications résultantes",
		KeyClaimsMergeSuccess:     "Les revendications ont été fusionnées",
		KeyClaimSplitSuccess:      "La revendication a été divisée",
		KeyClaimsMergeFailed:      "Échec de la fusion des revendications : %s",
		KeyClaimSplitFailed:       "Échec de la division de la revendication : %s",
		KeyGeneralUnexpectedError: "Erreur inattendue",
	},
	language.Russian: {
		KeyClaimNotFound:          "Заявка не найдена",
		KeyClaimMustBeModerated:   "Заявка должна пройти модерацию",
		KeyClaimHasRestrictions:   "У заявки есть действующие ограничения",
		KeyClaimAlreadyInList:     "Заявка уже в списке",
		KeyTransactionCompleted:   "Операция уже завершена",
		KeyInsufficientRights:     "Недостаточно прав для выполнения действия",
		KeyClaimsMergeCount:       "Выберите не менее 2 заявок для объединения и ровно 1 итоговую заявку",
		KeyClaimSplitCount:        "Выберите ровно 1 заявку для разделения и не менее 2 итоговых заявок",
		KeyClaimsMergeSuccess:     "Заявки успешно объединены",
		KeyClaimSplitSuccess:      "Заявка успешно разделена",
		KeyClaimsMergeFailed:      "Не удалось объединить заявки: %s",
		KeyClaimSplitFailed:       "Не удалось разделить заявку: %s",
		KeyGeneralUnexpectedError: "Непредвиденная ошибка",
	},
}
